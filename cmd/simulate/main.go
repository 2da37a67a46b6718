// Command simulate runs a level headlessly for a number of frames with a fixed
// set of held actions and prints what happened. Useful for checking a level
// or tuning edit without opening a window.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/milk9111/platformer3d/input"
	"github.com/milk9111/platformer3d/prefabs"
	"github.com/milk9111/platformer3d/world"
)

func main() {
	levelName := flag.String("level", "level.yaml", "level prefab name in prefabs/")
	tuningName := flag.String("tuning", "tuning.yaml", "physics tuning prefab name in prefabs/")
	frames := flag.Int("frames", 600, "number of frames to simulate")
	hold := flag.String("hold", "", "comma-separated actions held for the whole run (left,right,forward,back,jump)")
	verbose := flag.Bool("v", false, "print every event")
	flag.Parse()

	lvl, err := prefabs.LoadLevel(*levelName, *tuningName)
	if err != nil {
		log.Fatal(err)
	}

	controls, err := parseHold(*hold)
	if err != nil {
		log.Fatal(err)
	}

	sum := run(lvl.State, controls, lvl.Tuning, *frames, func(frame int, ev world.Events) {
		if *verbose {
			fmt.Printf("frame %5d: %s\n", frame, describe(ev))
		}
	})

	fmt.Printf("level %q: %d frames (%.2fs simulated)\n", lvl.Spec.Name, *frames, float64(*frames)*lvl.Tuning.Dt)
	fmt.Printf("  jumps=%d landings=%d respawns=%d coins=%d/%d best score=%d\n",
		sum.jumps, sum.landings, sum.respawns, sum.collected, len(lvl.State.Coins), sum.bestScore)
	p := sum.final.Player.Position
	fmt.Printf("  final position=(%.2f, %.2f, %.2f) score=%d onGround=%v\n", p.X(), p.Y(), p.Z(), sum.final.Score, sum.final.OnGround)
}

type summary struct {
	final     world.State
	jumps     int
	landings  int
	respawns  int
	collected int
	bestScore int
}

func run(s world.State, c world.Controls, t world.Tuning, frames int, onEvent func(int, world.Events)) summary {
	var sum summary
	for i := 0; i < frames; i++ {
		wasGrounded := s.OnGround
		var ev world.Events
		s, ev = world.Step(s, c, t)

		touchdown := ev.Landed && !wasGrounded
		if touchdown {
			sum.landings++
		}
		if ev.Jumped {
			sum.jumps++
		}
		if ev.Respawned {
			sum.respawns++
		}
		sum.collected += len(ev.Collected)
		sum.bestScore = max(sum.bestScore, s.Score)

		if onEvent != nil && (touchdown || ev.Jumped || ev.Respawned || len(ev.Collected) > 0) {
			onEvent(i, ev)
		}
	}
	sum.final = s
	return sum
}

func parseHold(s string) (world.Controls, error) {
	var c world.Controls
	for _, name := range strings.Split(s, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		switch input.Action(name) {
		case "":
		case input.ActionLeft:
			c.Left = true
		case input.ActionRight:
			c.Right = true
		case input.ActionForward:
			c.Forward = true
		case input.ActionBack:
			c.Back = true
		case input.ActionJump:
			c.Jump = true
		default:
			return world.Controls{}, fmt.Errorf("simulate: unknown action %q", name)
		}
	}
	return c, nil
}

func describe(ev world.Events) string {
	var parts []string
	if ev.Jumped {
		parts = append(parts, "jump")
	}
	if ev.Landed {
		parts = append(parts, "land")
	}
	for _, c := range ev.Collected {
		p := c.Position
		parts = append(parts, fmt.Sprintf("coin(%.1f,%.1f,%.1f)", p.X(), p.Y(), p.Z()))
	}
	if ev.Respawned {
		parts = append(parts, "respawn")
	}
	return strings.Join(parts, " ")
}
