package main

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/world"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(Config{Level: "level.yaml", Tuning: "tuning.yaml", Keys: "keys.yaml"})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func TestStartLatch(t *testing.T) {
	g := newTestGame(t)

	before := g.state.Player
	for i := 0; i < 5; i++ {
		g.tick(world.Controls{Right: true, Jump: true})
	}
	if g.state.Player != before || g.frames != 0 {
		t.Fatalf("world stepped before start: %+v -> %+v", before, g.state.Player)
	}
	if !g.ui.showMenu {
		t.Fatalf("menu should be shown before start")
	}

	g.Start()
	if !g.started || g.ui.showMenu {
		t.Fatalf("expected started with menu hidden, got started=%v showMenu=%v", g.started, g.ui.showMenu)
	}

	// a second Start must not touch the UI again
	g.ui.showMenu = true
	g.Start()
	if !g.ui.showMenu {
		t.Fatalf("second Start should be a no-op")
	}

	g.tick(world.Controls{})
	if g.frames != 1 || g.state.Player == before {
		t.Fatalf("expected one step after start, frames=%d player=%+v", g.frames, g.state.Player)
	}
}

func TestScoreLabel(t *testing.T) {
	g := newTestGame(t)
	g.Start()

	if got := g.ui.score.Label; got != "Score: 0" {
		t.Fatalf("initial label %q", got)
	}

	steps := []struct {
		name  string
		setup func()
		want  string
	}{
		{
			name:  "pickup",
			setup: func() { g.state.Coins = []world.Coin{{Position: g.state.Player.Position}} },
			want:  "Score: 1",
		},
		{
			name: "no_change_keeps_label",
			setup: func() {
				g.state.Coins = nil
				g.ui.score.Label = "untouched"
			},
			want: "untouched",
		},
		{
			name:  "respawn_resets",
			setup: func() { g.state.Player.Position = mgl64.Vec3{0, -20, 0} },
			want:  "Score: 0",
		},
	}
	for _, s := range steps {
		t.Run(s.name, func(t *testing.T) {
			s.setup()
			g.tick(world.Controls{})
			if got := g.ui.score.Label; got != s.want {
				t.Fatalf("expected %q, got %q (score %d)", s.want, got, g.state.Score)
			}
		})
	}
}

func TestLayoutFollowsResize(t *testing.T) {
	g := newTestGame(t)

	cases := []struct {
		w, h float64
	}{
		{1280, 720},
		{800, 600},
		{800, 600},
		{1920, 1080},
	}
	for _, c := range cases {
		gw, gh := g.LayoutF(c.w, c.h)
		if gw != c.w || gh != c.h {
			t.Fatalf("LayoutF(%v, %v) = %v, %v", c.w, c.h, gw, gh)
		}
		w, h := g.renderer.Projector.Viewport()
		if w != c.w || h != c.h {
			t.Fatalf("viewport %vx%v, expected %vx%v", w, h, c.w, c.h)
		}
		if g.renderer.SetViewport(int(c.w), int(c.h)) {
			t.Fatalf("viewport %vx%v should already be current", c.w, c.h)
		}
	}
}
