package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

// LoadSpec decodes the named prefab into a zero T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	return zero, decodeInto(filename, &zero)
}

// LoadSpecOver decodes the named prefab over base, so fields missing from the
// file keep base's values.
func LoadSpecOver[T any](filename string, base T) (T, error) {
	spec := base
	if err := decodeInto(filename, &spec); err != nil {
		return base, err
	}
	return spec, nil
}

func decodeInto(filename string, out any) error {
	data, err := Load(filename)
	if err != nil {
		return fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return nil
}

type Vec3Spec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec3Spec) Vec3() mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

type PlatformSpec struct {
	Position Vec3Spec `yaml:"position"`
	Width    float64  `yaml:"width"`
	Depth    float64  `yaml:"depth"`
	Goal     bool     `yaml:"goal"`
}

// CoinSpec places a coin. Position.Y is the surface height; coins float
// CoinLift above it.
type CoinSpec struct {
	Position Vec3Spec `yaml:"position"`
}

type CoinScriptSpec struct {
	Path   string             `yaml:"path"`
	Params map[string]float64 `yaml:"params"`
}

type ModelSpec struct {
	Path     string   `yaml:"path"`
	Scale    float64  `yaml:"scale"`
	Position Vec3Spec `yaml:"position"`
}

type PaletteSpec struct {
	Background YAMLColor `yaml:"background"`
	Player     YAMLColor `yaml:"player"`
	Eyes       YAMLColor `yaml:"eyes"`
	Coin       YAMLColor `yaml:"coin"`
	Platform   YAMLColor `yaml:"platform"`
	Goal       YAMLColor `yaml:"goal"`
	Model      YAMLColor `yaml:"model"`
}

type LevelSpec struct {
	Name        string           `yaml:"name"`
	Platforms   []PlatformSpec   `yaml:"platforms"`
	Coins       []CoinSpec       `yaml:"coins"`
	CoinScripts []CoinScriptSpec `yaml:"coin_scripts"`
	Model       ModelSpec        `yaml:"model"`
	Texture     string           `yaml:"texture"`
	Palette     PaletteSpec      `yaml:"palette"`
}

func LoadLevelSpec(name string) (*LevelSpec, error) {
	spec, err := LoadSpecOver(name, DefaultLevelSpec())
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// DefaultLevelSpec carries the palette and asset defaults a level file may
// leave out. It has no geometry.
func DefaultLevelSpec() LevelSpec {
	return LevelSpec{
		Model:   ModelSpec{Path: "Models/untitled.glb", Scale: 3},
		Texture: "textures/stone.jpg",
		Palette: PaletteSpec{
			Background: YAMLColor{colornames.Skyblue},
			Player:     YAMLColor{color.NRGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}},
			Eyes:       YAMLColor{colornames.Black},
			Coin:       YAMLColor{colornames.Gold},
			Platform:   YAMLColor{colornames.Slategray},
			Goal:       YAMLColor{colornames.Gold},
			Model:      YAMLColor{colornames.Saddlebrown},
		},
	}
}

type TuningSpec struct {
	Gravity         float64  `yaml:"gravity"`
	Dt              float64  `yaml:"dt"`
	MoveSpeed       float64  `yaml:"move_speed"`
	JumpImpulse     float64  `yaml:"jump_impulse"`
	JumpCooldown    float64  `yaml:"jump_cooldown"`
	PickupRadius    float64  `yaml:"pickup_radius"`
	FallThreshold   float64  `yaml:"fall_threshold"`
	Spawn           Vec3Spec `yaml:"spawn"`
	LandingBelow    float64  `yaml:"landing_below"`
	LandingAbove    float64  `yaml:"landing_above"`
	CameraOffset    Vec3Spec `yaml:"camera_offset"`
	CameraSmoothing float64  `yaml:"camera_smoothing"`
}

type KeysSpec struct {
	Bindings map[string][]string `yaml:"bindings"`
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(strings.TrimSpace(value.Value))]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
