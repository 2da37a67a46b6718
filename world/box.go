package world

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/jakecoffman/cp"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// footprint is the box's projection onto the ground plane (X, Z).
func (b Box) footprint() cp.BB {
	return cp.BB{L: b.Min.X(), B: b.Min.Z(), R: b.Max.X(), T: b.Max.Z()}
}

// Intersects reports whether the boxes overlap or touch. There is no minimum
// overlap; a sliver counts the same as full containment.
func (b Box) Intersects(o Box) bool {
	if b.Max.Y() < o.Min.Y() || b.Min.Y() > o.Max.Y() {
		return false
	}
	return b.footprint().Intersects(o.footprint())
}

// Corners returns the eight corners, bottom face first.
func (b Box) Corners() [8]mgl64.Vec3 {
	lo, hi := b.Min, b.Max
	return [8]mgl64.Vec3{
		{lo.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), lo.Z()},
		{hi.X(), lo.Y(), hi.Z()},
		{lo.X(), lo.Y(), hi.Z()},
		{lo.X(), hi.Y(), lo.Z()},
		{hi.X(), hi.Y(), lo.Z()},
		{hi.X(), hi.Y(), hi.Z()},
		{lo.X(), hi.Y(), hi.Z()},
	}
}
