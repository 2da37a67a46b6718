// Package render draws the world as seen from the follow camera. Boxes are
// filled faces sorted back to front; coins and eyes are screen-space discs;
// the loaded model is a wireframe of its bounds.
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/common"
	"github.com/milk9111/platformer3d/world"
)

// Projector maps world points onto the viewport with a perspective camera.
type Projector struct {
	FovY float64 // degrees
	Near float64
	Far  float64

	width  float64
	height float64
	eye    mgl64.Vec3
	vp     mgl64.Mat4
	ready  bool
}

func NewProjector() *Projector {
	return &Projector{
		FovY:   75,
		Near:   0.1,
		Far:    1000,
		width:  common.BaseWidth,
		height: common.BaseHeight,
	}
}

// SetViewport resizes the output and reports whether the size changed.
func (p *Projector) SetViewport(w, h int) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	if float64(w) == p.width && float64(h) == p.height {
		return false
	}
	p.width = float64(w)
	p.height = float64(h)
	return true
}

func (p *Projector) Viewport() (float64, float64) {
	return p.width, p.height
}

func (p *Projector) Aspect() float64 {
	return p.width / p.height
}

func (p *Projector) Eye() mgl64.Vec3 {
	return p.eye
}

// LookAt aims the projector along the camera. It returns false, and leaves
// the projector unusable, when the camera sits on its look-at point.
func (p *Projector) LookAt(c world.Camera) bool {
	forward := c.LookAt.Sub(c.Position)
	if forward.Len() < 1e-9 {
		p.ready = false
		return false
	}
	up := world.Up
	if forward.Normalize().Cross(up).Len() < 1e-6 {
		up = mgl64.Vec3{0, 0, -1}
	}

	view := mgl64.LookAtV(c.Position, c.LookAt, up)
	proj := mgl64.Perspective(mgl64.DegToRad(p.FovY), p.Aspect(), p.Near, p.Far)
	p.vp = proj.Mul4(view)
	p.eye = c.Position
	p.ready = true
	return true
}

// Project returns the screen position of pt and its view depth. ok is false
// for points at or behind the near plane.
func (p *Projector) Project(pt mgl64.Vec3) (screen mgl64.Vec2, depth float64, ok bool) {
	if !p.ready {
		return mgl64.Vec2{}, 0, false
	}
	clip := p.vp.Mul4x1(pt.Vec4(1))
	w := clip.W()
	if w <= p.Near {
		return mgl64.Vec2{}, w, false
	}
	ndcX := clip.X() / w
	ndcY := clip.Y() / w
	return mgl64.Vec2{
		(ndcX + 1) / 2 * p.width,
		(1 - ndcY) / 2 * p.height,
	}, w, true
}

// ScreenRadius is the on-screen radius of a sphere of radius r at depth.
func (p *Projector) ScreenRadius(r, depth float64) float64 {
	if depth <= 0 {
		return 0
	}
	focal := (p.height / 2) / math.Tan(mgl64.DegToRad(p.FovY)/2)
	return r * focal / depth
}
