package world

import "github.com/go-gl/mathgl/mgl64"

// Tuning holds the constants the step runs with.
type Tuning struct {
	Gravity       float64
	Dt            float64
	MoveSpeed     float64
	JumpImpulse   float64
	JumpCooldown  float64
	PickupRadius  float64
	FallThreshold float64
	Spawn         mgl64.Vec3

	// LandingBelow and LandingAbove bound the band around a platform top in
	// which a falling player's bottom snaps onto it.
	LandingBelow float64
	LandingAbove float64

	CameraOffset    mgl64.Vec3
	CameraSmoothing float64
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:         -9.8,
		Dt:              0.016,
		MoveSpeed:       5,
		JumpImpulse:     8,
		JumpCooldown:    0.3,
		PickupRadius:    0.7,
		FallThreshold:   -10,
		Spawn:           mgl64.Vec3{0, 5, 0},
		LandingBelow:    0.3,
		LandingAbove:    0.05,
		CameraOffset:    mgl64.Vec3{0, 5, 10},
		CameraSmoothing: 0.1,
	}
}
