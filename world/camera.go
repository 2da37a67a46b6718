package world

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/common"
)

// follow eases the camera a fixed fraction of the way toward its offset from
// the player each frame. The fraction is per frame, not per second.
func follow(c Camera, p Player, t Tuning) Camera {
	target := p.Position.Add(t.CameraOffset)
	c.Position = common.LerpVec3(c.Position, target, t.CameraSmoothing)
	c.LookAt = p.Position
	return c
}

// SnapCamera places the camera at its resting offset from the player.
func SnapCamera(s State, t Tuning) State {
	s.Camera = Camera{Position: s.Player.Position.Add(t.CameraOffset), LookAt: s.Player.Position}
	return s
}

// Up is the world's up axis.
var Up = mgl64.Vec3{0, 1, 0}
