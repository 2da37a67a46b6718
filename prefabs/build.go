package prefabs

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/platformer3d/input"
	"github.com/milk9111/platformer3d/world"
)

// CoinLift is how far above its placement height a coin floats.
const CoinLift = 0.3

// Level is a built level: the initial world state plus everything the shell
// needs to draw and load assets for it.
type Level struct {
	Spec   *LevelSpec
	Tuning world.Tuning
	State  world.State
}

// LoadLevel loads the named level and tuning prefabs and builds the initial
// state.
func LoadLevel(levelName, tuningName string) (*Level, error) {
	spec, err := LoadLevelSpec(levelName)
	if err != nil {
		return nil, err
	}
	tuning, err := LoadTuning(tuningName)
	if err != nil {
		return nil, err
	}
	state, err := BuildState(spec, tuning)
	if err != nil {
		return nil, err
	}
	return &Level{Spec: spec, Tuning: tuning, State: state}, nil
}

// BuildState creates platforms in spec order, followed by hand-placed coins
// and then scripted coins. The camera starts at rest behind the spawn point.
func BuildState(spec *LevelSpec, tuning world.Tuning) (world.State, error) {
	if spec == nil {
		return world.State{}, fmt.Errorf("prefabs: nil level spec")
	}

	platforms := make([]world.Platform, 0, len(spec.Platforms))
	for i, p := range spec.Platforms {
		if p.Width <= 0 || p.Depth <= 0 {
			return world.State{}, fmt.Errorf("prefabs: level %q platform %d: width and depth must be positive", spec.Name, i)
		}
		platforms = append(platforms, world.Platform{
			Center: p.Position.Vec3(),
			Width:  p.Width,
			Depth:  p.Depth,
			Goal:   p.Goal,
		})
	}

	placed := append([]CoinSpec(nil), spec.Coins...)
	for _, script := range spec.CoinScripts {
		coins, err := loadCoinScript(script)
		if err != nil {
			return world.State{}, err
		}
		placed = append(placed, coins...)
	}

	coins := make([]world.Coin, 0, len(placed))
	for _, c := range placed {
		coins = append(coins, world.Coin{Position: c.Position.Vec3().Add(mgl64.Vec3{0, CoinLift, 0})})
	}

	return world.SnapCamera(world.NewState(tuning, platforms, coins), tuning), nil
}

func DefaultTuningSpec() TuningSpec {
	t := world.DefaultTuning()
	return TuningSpec{
		Gravity:         t.Gravity,
		Dt:              t.Dt,
		MoveSpeed:       t.MoveSpeed,
		JumpImpulse:     t.JumpImpulse,
		JumpCooldown:    t.JumpCooldown,
		PickupRadius:    t.PickupRadius,
		FallThreshold:   t.FallThreshold,
		Spawn:           Vec3Spec{X: t.Spawn.X(), Y: t.Spawn.Y(), Z: t.Spawn.Z()},
		LandingBelow:    t.LandingBelow,
		LandingAbove:    t.LandingAbove,
		CameraOffset:    Vec3Spec{X: t.CameraOffset.X(), Y: t.CameraOffset.Y(), Z: t.CameraOffset.Z()},
		CameraSmoothing: t.CameraSmoothing,
	}
}

func (s TuningSpec) Tuning() (world.Tuning, error) {
	if s.Dt <= 0 {
		return world.Tuning{}, fmt.Errorf("prefabs: tuning dt must be positive, got %v", s.Dt)
	}
	if s.PickupRadius < 0 || s.JumpCooldown < 0 {
		return world.Tuning{}, fmt.Errorf("prefabs: tuning radius and cooldown must not be negative")
	}
	if s.CameraSmoothing < 0 || s.CameraSmoothing > 1 {
		return world.Tuning{}, fmt.Errorf("prefabs: camera_smoothing must be within [0, 1], got %v", s.CameraSmoothing)
	}
	return world.Tuning{
		Gravity:         s.Gravity,
		Dt:              s.Dt,
		MoveSpeed:       s.MoveSpeed,
		JumpImpulse:     s.JumpImpulse,
		JumpCooldown:    s.JumpCooldown,
		PickupRadius:    s.PickupRadius,
		FallThreshold:   s.FallThreshold,
		Spawn:           s.Spawn.Vec3(),
		LandingBelow:    s.LandingBelow,
		LandingAbove:    s.LandingAbove,
		CameraOffset:    s.CameraOffset.Vec3(),
		CameraSmoothing: s.CameraSmoothing,
	}, nil
}

func LoadTuning(name string) (world.Tuning, error) {
	spec, err := LoadSpecOver(name, DefaultTuningSpec())
	if err != nil {
		return world.Tuning{}, err
	}
	return spec.Tuning()
}

func LoadBindings(name string) (input.Bindings, error) {
	spec, err := LoadSpec[KeysSpec](name)
	if err != nil {
		return nil, err
	}
	b, err := input.ParseBindings(spec.Bindings)
	if err != nil {
		return nil, fmt.Errorf("prefabs: %s: %w", name, err)
	}
	return b, nil
}
