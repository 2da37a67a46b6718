package world

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const eps = 1e-9

func ground() Platform {
	// top surface at y=0
	return Platform{Center: mgl64.Vec3{0, -0.25, 0}, Width: 10, Depth: 10}
}

func standing() State {
	t := DefaultTuning()
	s := NewState(t, []Platform{ground()}, nil)
	s.Player.Position = mgl64.Vec3{0, 0.5, 0}
	return s
}

func TestGravityIntegration(t *testing.T) {
	tun := DefaultTuning()
	s := NewState(tun, nil, nil)

	for i := 0; i < 50; i++ {
		before := s.Player.VelocityY
		var ev Events
		s, ev = Step(s, Controls{}, tun)
		if ev.Respawned || ev.Landed || ev.Jumped {
			t.Fatalf("frame %d: unexpected event %+v", i, ev)
		}
		if d := before - s.Player.VelocityY; math.Abs(d-math.Abs(tun.Gravity)*tun.Dt) > eps {
			t.Fatalf("frame %d: velocity dropped by %v", i, d)
		}
	}
}

func TestLandsBand(t *testing.T) {
	tun := DefaultTuning()
	cases := []struct {
		name   string
		bottom float64
		vy     float64
		want   bool
	}{
		{"upper_edge", 0.05, -1, true},
		{"just_above_band", 0.051, -1, false},
		{"lower_edge", -0.3, -1, true},
		{"just_below_band", -0.301, -1, false},
		{"at_rest", 0, 0, true},
		{"rising", 0, 0.1, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := Lands(c.bottom, 0, c.vy, tun); got != c.want {
				t.Fatalf("Lands(%v, 0, %v) = %v, want %v", c.bottom, c.vy, got, c.want)
			}
		})
	}
}

func TestStandingPlayerStaysPinned(t *testing.T) {
	tun := DefaultTuning()
	s := standing()

	for i := 0; i < 600; i++ {
		s, _ = Step(s, Controls{}, tun)
		if s.Player.Position.Y() != 0.5 {
			t.Fatalf("frame %d: expected y=0.5, got %v", i, s.Player.Position.Y())
		}
		if !s.OnGround || s.Player.VelocityY != 0 {
			t.Fatalf("frame %d: expected grounded at rest, got onGround=%v vy=%v", i, s.OnGround, s.Player.VelocityY)
		}
	}
}

func TestFirstPlatformWins(t *testing.T) {
	tun := DefaultTuning()
	low := Platform{Center: mgl64.Vec3{0, -0.25, 0}, Width: 4, Depth: 4}
	high := Platform{Center: mgl64.Vec3{0, -0.15, 0}, Width: 4, Depth: 4}

	cases := []struct {
		name      string
		platforms []Platform
		wantY     float64
	}{
		{"low_first", []Platform{low, high}, 0.5},
		{"high_first", []Platform{high, low}, 0.6},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewState(tun, c.platforms, nil)
			s.Player.Position = mgl64.Vec3{0, 0.55, 0}
			s, _ = Step(s, Controls{}, tun)
			if !s.OnGround {
				t.Fatalf("expected landing")
			}
			if math.Abs(s.Player.Position.Y()-c.wantY) > eps {
				t.Fatalf("expected y=%v, got %v", c.wantY, s.Player.Position.Y())
			}
		})
	}
}

func TestEdgeOverlap(t *testing.T) {
	tun := DefaultTuning()
	narrow := Platform{Center: mgl64.Vec3{0, -0.25, 0}, Width: 2, Depth: 2}

	cases := []struct {
		name   string
		x      float64
		landed bool
	}{
		{"sliver_overlap", 1.39, true},
		{"clear_of_edge", 1.45, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := NewState(tun, []Platform{narrow}, nil)
			s.Player.Position = mgl64.Vec3{c.x, 0.5, 0}
			s, _ = Step(s, Controls{}, tun)
			if s.OnGround != c.landed {
				t.Fatalf("expected onGround=%v, got %v", c.landed, s.OnGround)
			}
		})
	}
}

func TestHorizontalMovementIgnoresPlatformSides(t *testing.T) {
	tun := DefaultTuning()
	// A wall-height platform the player's box overlaps but cannot land on.
	wall := Platform{Center: mgl64.Vec3{0, 1, 0}, Width: 2, Depth: 2}
	s := NewState(tun, []Platform{wall}, nil)
	s.Player.Position = mgl64.Vec3{-1.3, 0.5, 0}

	for i := 0; i < 20; i++ {
		x := s.Player.Position.X()
		s, _ = Step(s, Controls{Right: true}, tun)
		if d := s.Player.Position.X() - x; math.Abs(d-tun.MoveSpeed*tun.Dt) > eps {
			t.Fatalf("frame %d: expected x to advance by %v, got %v", i, tun.MoveSpeed*tun.Dt, d)
		}
		if s.OnGround {
			t.Fatalf("frame %d: should not stand on a platform above the player", i)
		}
	}
}

func TestOpposingDirectionsCancel(t *testing.T) {
	tun := DefaultTuning()
	s := standing()
	s, _ = Step(s, Controls{Left: true, Right: true, Forward: true, Back: true}, tun)
	if s.Player.Position.X() != 0 || s.Player.Position.Z() != 0 {
		t.Fatalf("expected no horizontal motion, got %v", s.Player.Position)
	}

	s, _ = Step(s, Controls{Forward: true}, tun)
	if s.Player.Position.Z() >= 0 {
		t.Fatalf("forward should move toward -Z, got z=%v", s.Player.Position.Z())
	}
}

func TestJump(t *testing.T) {
	tun := DefaultTuning()

	t.Run("fires_on_ground", func(t *testing.T) {
		s := standing()
		s, ev := Step(s, Controls{Jump: true}, tun)
		if !ev.Jumped || s.Player.VelocityY != tun.JumpImpulse || s.OnGround {
			t.Fatalf("expected jump, got ev=%+v vy=%v onGround=%v", ev, s.Player.VelocityY, s.OnGround)
		}
		if s.JumpCooldown != tun.JumpCooldown {
			t.Fatalf("expected cooldown %v, got %v", tun.JumpCooldown, s.JumpCooldown)
		}
	})

	t.Run("rejected_during_cooldown", func(t *testing.T) {
		s := standing()
		s.JumpCooldown = tun.JumpCooldown
		s, ev := Step(s, Controls{Jump: true}, tun)
		if ev.Jumped {
			t.Fatalf("jump should be rejected while cooling down")
		}
		if !s.OnGround {
			t.Fatalf("player should still be grounded")
		}
		if math.Abs(s.JumpCooldown-(tun.JumpCooldown-tun.Dt)) > eps {
			t.Fatalf("cooldown should tick down, got %v", s.JumpCooldown)
		}
	})

	t.Run("rejected_in_air", func(t *testing.T) {
		s := NewState(tun, nil, nil)
		s.JumpCooldown = -1
		_, ev := Step(s, Controls{Jump: true}, tun)
		if ev.Jumped {
			t.Fatalf("jump should need ground")
		}
	})

	t.Run("cooldown_goes_negative", func(t *testing.T) {
		s := standing()
		for i := 0; i < 100; i++ {
			s, _ = Step(s, Controls{}, tun)
		}
		if s.JumpCooldown >= 0 {
			t.Fatalf("cooldown is not clamped, expected negative, got %v", s.JumpCooldown)
		}
	})

	t.Run("held_jump_repeats", func(t *testing.T) {
		s := standing()
		var frames []int
		for i := 0; i < 250; i++ {
			var ev Events
			s, ev = Step(s, Controls{Jump: true}, tun)
			if ev.Jumped {
				frames = append(frames, i)
			}
		}
		if len(frames) < 2 {
			t.Fatalf("expected repeated jumps while held, got %v", frames)
		}
		minGap := int(math.Ceil(tun.JumpCooldown / tun.Dt))
		for i := 1; i < len(frames); i++ {
			if frames[i]-frames[i-1] < minGap {
				t.Fatalf("jumps %d and %d closer than the cooldown", frames[i-1], frames[i])
			}
		}
	})
}
