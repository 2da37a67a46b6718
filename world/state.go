// Package world holds the platformer's simulation state and the per-frame step
// that advances it. Nothing here touches the window, the renderer or the
// keyboard; the caller feeds Controls in and reacts to the returned Events.
package world

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	PlayerWidth  = 0.8
	PlayerHeight = 1.5
	PlayerDepth  = 0.8

	// PlayerFootOffset is the distance from the player's position down to the
	// point tested against a platform's top surface.
	PlayerFootOffset = 0.5

	PlatformThickness = 0.5
)

type Player struct {
	Position  mgl64.Vec3
	VelocityY float64
}

// Bounds returns the player's world-space collision box.
func (p Player) Bounds() Box {
	half := mgl64.Vec3{PlayerWidth / 2, PlayerHeight / 2, PlayerDepth / 2}
	return Box{Min: p.Position.Sub(half), Max: p.Position.Add(half)}
}

// Bottom is the height compared against a platform top when landing.
func (p Player) Bottom() float64 {
	return p.Position.Y() - PlayerFootOffset
}

// Platform is a static box. Goal only changes how it is drawn.
type Platform struct {
	Center mgl64.Vec3
	Width  float64
	Depth  float64
	Goal   bool
}

func (p Platform) Bounds() Box {
	half := mgl64.Vec3{p.Width / 2, PlatformThickness / 2, p.Depth / 2}
	return Box{Min: p.Center.Sub(half), Max: p.Center.Add(half)}
}

func (p Platform) Top() float64 {
	return p.Center.Y() + PlatformThickness/2
}

type Coin struct {
	Position mgl64.Vec3
}

type Camera struct {
	Position mgl64.Vec3
	LookAt   mgl64.Vec3
}

// State is everything the step reads and writes. A coin is alive while it is
// in Coins.
type State struct {
	Player       Player
	Platforms    []Platform
	Coins        []Coin
	Score        int
	OnGround     bool
	JumpCooldown float64
	Camera       Camera
}

// NewState places the player at the tuning's spawn point. The camera starts at
// the origin and catches up through the follow smoothing.
func NewState(t Tuning, platforms []Platform, coins []Coin) State {
	return State{
		Player:    Player{Position: t.Spawn},
		Platforms: platforms,
		Coins:     coins,
	}
}

// Controls is the held state of every game action, sampled once per frame.
type Controls struct {
	Left    bool
	Right   bool
	Forward bool
	Back    bool
	Jump    bool
}

// Events reports what a step did so the caller can update the HUD and scene.
type Events struct {
	Collected    []Coin
	ScoreChanged bool
	Landed       bool
	Jumped       bool
	Respawned    bool
}
