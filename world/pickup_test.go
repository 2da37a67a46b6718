package world

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestCollectByRadius(t *testing.T) {
	tun := DefaultTuning()
	s := standing()
	near := Coin{Position: mgl64.Vec3{0.69, 0.5, 0}}
	far := Coin{Position: mgl64.Vec3{0, 0.5, 0.71}}
	s.Coins = []Coin{near, far}
	before := append([]Coin(nil), s.Coins...)

	next, ev := Step(s, Controls{}, tun)
	if next.Score != 1 {
		t.Fatalf("expected score 1, got %d", next.Score)
	}
	if len(next.Coins) != 1 || next.Coins[0] != far {
		t.Fatalf("expected only the far coin to remain, got %v", next.Coins)
	}
	if len(ev.Collected) != 1 || ev.Collected[0] != near || !ev.ScoreChanged {
		t.Fatalf("unexpected events %+v", ev)
	}
	for i := range before {
		if s.Coins[i] != before[i] {
			t.Fatalf("step modified the caller's coins: %v", s.Coins)
		}
	}

	again, ev := Step(next, Controls{}, tun)
	if again.Score != 1 || len(ev.Collected) != 0 || ev.ScoreChanged {
		t.Fatalf("coin counted twice: score=%d ev=%+v", again.Score, ev)
	}
}

func TestCollectSeveralInOneFrame(t *testing.T) {
	tun := DefaultTuning()
	s := standing()
	s.Coins = []Coin{
		{Position: mgl64.Vec3{0.1, 0.5, 0}},
		{Position: mgl64.Vec3{5, 0.5, 0}},
		{Position: mgl64.Vec3{-0.2, 0.6, 0}},
		{Position: mgl64.Vec3{0, 0.5, 0.3}},
	}

	s, ev := Step(s, Controls{}, tun)
	if s.Score != 3 || len(ev.Collected) != 3 {
		t.Fatalf("expected 3 coins collected, got score=%d collected=%d", s.Score, len(ev.Collected))
	}
	if len(s.Coins) != 1 || s.Coins[0].Position.X() != 5 {
		t.Fatalf("expected the distant coin to remain, got %v", s.Coins)
	}
}

func TestRespawnMidAir(t *testing.T) {
	tun := DefaultTuning()
	s := NewState(tun, nil, []Coin{{Position: mgl64.Vec3{50, 0, 0}}, {Position: mgl64.Vec3{60, 0, 0}}})
	s.Player.Position = mgl64.Vec3{3, -9.99, 2}
	s.Player.VelocityY = -5
	s.Score = 3

	s, ev := Step(s, Controls{}, tun)
	if !ev.Respawned || !ev.ScoreChanged {
		t.Fatalf("expected respawn event, got %+v", ev)
	}
	if s.Player.Position != tun.Spawn || s.Player.VelocityY != 0 || s.Score != 0 {
		t.Fatalf("expected reset player, got pos=%v vy=%v score=%d", s.Player.Position, s.Player.VelocityY, s.Score)
	}
	if len(s.Coins) != 2 {
		t.Fatalf("coins must not respawn or vanish, got %d", len(s.Coins))
	}
}

func TestNoRespawnAtThreshold(t *testing.T) {
	tun := DefaultTuning()
	s := NewState(tun, nil, nil)
	// One frame from rest moves the player down by g*dt*dt.
	s.Player.Position = mgl64.Vec3{0, tun.FallThreshold - tun.Gravity*tun.Dt*tun.Dt + 1e-6, 0}
	s.Score = 2

	s, ev := Step(s, Controls{}, tun)
	if ev.Respawned {
		t.Fatalf("respawned above the threshold at y=%v", s.Player.Position.Y())
	}
	if s.Score != 2 {
		t.Fatalf("score should be kept, got %d", s.Score)
	}
}

func TestFallOutOfWorld(t *testing.T) {
	tun := DefaultTuning()
	s := NewState(tun, []Platform{{Center: mgl64.Vec3{20, 0, 0}, Width: 5, Depth: 5}}, nil)
	s.Score = 4

	for i := 0; i < 1000; i++ {
		y := s.Player.Position.Y()
		var ev Events
		s, ev = Step(s, Controls{}, tun)
		if ev.Respawned {
			if s.Player.Position != (mgl64.Vec3{0, 5, 0}) || s.Score != 0 || s.Player.VelocityY != 0 {
				t.Fatalf("bad respawn state: %+v", s.Player)
			}
			return
		}
		if s.Player.Position.Y() >= y {
			t.Fatalf("frame %d: player did not fall (%v -> %v)", i, y, s.Player.Position.Y())
		}
	}
	t.Fatalf("player never respawned")
}
