package world

import "github.com/go-gl/mathgl/mgl64"

// moveHorizontal applies X/Z movement with no collision against platform
// sides; the player walks through walls and off edges.
func moveHorizontal(p Player, c Controls, t Tuning) Player {
	step := t.MoveSpeed * t.Dt
	var d mgl64.Vec3
	if c.Left {
		d[0] -= step
	}
	if c.Right {
		d[0] += step
	}
	if c.Forward {
		d[2] -= step
	}
	if c.Back {
		d[2] += step
	}
	p.Position = p.Position.Add(d)
	return p
}

func integrate(p Player, t Tuning) Player {
	p.VelocityY += t.Gravity * t.Dt
	p.Position[1] += p.VelocityY * t.Dt
	return p
}

// Lands reports whether a player with the given bottom and vertical velocity
// settles onto a platform whose top is at top.
func Lands(bottom, top, velocityY float64, t Tuning) bool {
	return velocityY <= 0 && bottom <= top+t.LandingAbove && bottom >= top-t.LandingBelow
}

// land scans platforms in order and snaps the player onto the first one it
// intersects and passes the landing test for. There is no penetration
// resolution beyond that.
func land(p Player, platforms []Platform, t Tuning) (Player, bool) {
	box := p.Bounds()
	for _, pl := range platforms {
		if !box.Intersects(pl.Bounds()) {
			continue
		}
		top := pl.Top()
		if !Lands(p.Bottom(), top, p.VelocityY, t) {
			continue
		}
		p.Position[1] = top + PlayerFootOffset
		p.VelocityY = 0
		return p, true
	}
	return p, false
}

// jump ticks the cooldown down (it may go negative) and fires the impulse when
// the jump action is held on the ground. Holding jump re-fires once per
// cooldown window.
func jump(s State, c Controls, t Tuning, ev *Events) State {
	s.JumpCooldown -= t.Dt
	if c.Jump && s.OnGround && s.JumpCooldown <= 0 {
		s.Player.VelocityY = t.JumpImpulse
		s.OnGround = false
		s.JumpCooldown = t.JumpCooldown
		ev.Jumped = true
	}
	return s
}
