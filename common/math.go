package common

import "github.com/go-gl/mathgl/mgl64"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// LerpVec3 moves a toward b by fraction t of the remaining distance.
func LerpVec3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return mgl64.Vec3{
		Lerp(a.X(), b.X(), t),
		Lerp(a.Y(), b.Y(), t),
		Lerp(a.Z(), b.Z(), t),
	}
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
