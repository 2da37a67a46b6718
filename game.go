package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer3d/assets"
	"github.com/milk9111/platformer3d/input"
	"github.com/milk9111/platformer3d/prefabs"
	"github.com/milk9111/platformer3d/render"
	"github.com/milk9111/platformer3d/world"
)

type Config struct {
	Level   string
	Tuning  string
	Keys    string
	Model   string
	Texture string
	Watch   bool
	Debug   bool
}

type Game struct {
	cfg     Config
	frames  int
	started bool

	level *prefabs.Level
	state world.State
	model *assets.ModelBounds

	keys     *input.State
	keyboard *keyboard
	renderer *render.Renderer
	loader   *assets.Loader
	watcher  *prefabs.Watcher
	ui       *gameUI
}

func NewGame(cfg Config) (*Game, error) {
	lvl, err := prefabs.LoadLevel(cfg.Level, cfg.Tuning)
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", cfg.Level, err)
	}

	g := &Game{
		cfg:      cfg,
		level:    lvl,
		state:    lvl.State,
		renderer: render.NewRenderer(palette(lvl.Spec)),
		loader:   assets.NewLoader(),
	}
	g.setBindings(g.loadBindings())
	g.ui = newGameUI(g.Start)

	model := lvl.Spec.Model.Path
	if cfg.Model != "" {
		model = cfg.Model
	}
	texture := lvl.Spec.Texture
	if cfg.Texture != "" {
		texture = cfg.Texture
	}
	if model != "" {
		g.loader.LoadModel(model)
	}
	if texture != "" {
		g.loader.LoadTexture(texture)
	}

	if cfg.Watch {
		w, err := prefabs.NewWatcher()
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// Start latches the game into the running state and hides the menu. Calls
// after the first are no-ops.
func (g *Game) Start() {
	if g.started {
		return
	}
	g.started = true
	g.ui.HideMenu()
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		return ebiten.Termination
	}

	g.pollAssets()
	g.pollReload()

	g.keyboard.Update()
	g.ui.Update()

	g.tick(g.keys.Snapshot())
	return nil
}

// tick advances the world one frame once the game has started and keeps the
// score label in step with it.
func (g *Game) tick(c world.Controls) {
	if !g.started {
		return
	}

	g.frames++
	var ev world.Events
	g.state, ev = world.Step(g.state, c, g.level.Tuning)
	if ev.ScoreChanged {
		g.ui.SetScore(g.state.Score)
	}
	if g.cfg.Debug && ev.Respawned {
		log.Printf("game: respawned at frame %d", g.frames)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.state)
	g.ui.Draw(screen)

	if g.cfg.Debug {
		p := g.state.Player
		msg := fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f\npos: %.2f %.2f %.2f  vy: %.2f  ground: %v  cooldown: %.3f\ncoins left: %d",
			g.frames, ebiten.ActualFPS(), ebiten.ActualTPS(),
			p.Position.X(), p.Position.Y(), p.Position.Z(), p.VelocityY, g.state.OnGround, g.state.JumpCooldown,
			len(g.state.Coins))
		ebitenutil.DebugPrintAt(screen, msg, 10, 40)
	}
}

// LayoutF renders at the window's size; the projection follows resizes.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if g.renderer.SetViewport(int(outsideWidth), int(outsideHeight)) && g.cfg.Debug {
		log.Printf("game: viewport %dx%d", int(outsideWidth), int(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

// pollAssets applies loads that finished since the last frame. Failures are
// logged once and the asset stays missing.
func (g *Game) pollAssets() {
	for _, r := range g.loader.Poll() {
		if r.Err != nil {
			log.Printf("assets: %s", r.Warning())
			if g.cfg.Debug {
				log.Printf("assets: %v", r.Err)
			}
			continue
		}
		switch r.Kind {
		case assets.KindTexture:
			g.renderer.SetTexture(ebiten.NewImageFromImage(r.Image))
		case assets.KindModel:
			b := r.Model
			g.model = &b
			g.placeModel()
		}
	}
}

func (g *Game) placeModel() {
	if g.model == nil {
		return
	}
	spec := g.level.Spec.Model
	g.renderer.SetModel(g.model.Scaled(spec.Scale, spec.Position.Vec3()))
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	select {
	case err := <-g.watcher.Errors:
		log.Printf("prefabs: watch error: %v", err)
	default:
	}

	changed := g.watcher.Drain()
	if len(changed) == 0 {
		return
	}
	if err := g.reload(); err != nil {
		log.Printf("prefabs: reload after %v failed, keeping current level: %v", changed, err)
		return
	}
	log.Printf("prefabs: reloaded %s after %d change(s)", g.cfg.Level, len(changed))
}

// reload rebuilds the level, tuning and bindings from the prefabs. Score and
// coins start over; the camera keeps easing from where it was.
func (g *Game) reload() error {
	lvl, err := prefabs.LoadLevel(g.cfg.Level, g.cfg.Tuning)
	if err != nil {
		return err
	}
	lvl.State.Camera = g.state.Camera
	g.level = lvl
	g.state = lvl.State
	g.renderer.Scene.Palette = palette(lvl.Spec)
	g.placeModel()
	g.setBindings(g.loadBindings())
	g.ui.SetScore(g.state.Score)
	return nil
}

func (g *Game) loadBindings() input.Bindings {
	b, err := prefabs.LoadBindings(g.cfg.Keys)
	if err != nil {
		log.Printf("input: using default bindings: %v", err)
		return input.DefaultBindings()
	}
	return b
}

func (g *Game) setBindings(b input.Bindings) {
	g.keys = input.NewState(b)
	g.keyboard = newKeyboard(g.keys)
}

func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}

func palette(spec *prefabs.LevelSpec) render.Palette {
	p := spec.Palette
	return render.Palette{
		Background: p.Background.Color,
		Player:     p.Player.Color,
		Eyes:       p.Eyes.Color,
		Coin:       p.Coin.Color,
		Platform:   p.Platform.Color,
		Goal:       p.Goal.Color,
		Model:      p.Model.Color,
	}
}
