// Package window runs a game in a desktop window with Ebitengine, scaling
// the 128x64 frame up to a visible size.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/lcd-invaders/internal/core"
	"github.com/vovakirdan/lcd-invaders/internal/lcd"
	"github.com/vovakirdan/lcd-invaders/internal/registry"
	"github.com/vovakirdan/lcd-invaders/internal/storage"
)

// DefaultScale is the window size multiplier used when none is given.
const DefaultScale = 6

// Options customize a window session.
type Options struct {
	Scale   int
	Player  string
	Palette lcd.Palette
	Logger  *log.Logger
}

// Keys for each control. Any of them holds the control.
var controlKeys = [...][]ebiten.Key{
	core.ControlLeft:  {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ControlRight: {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ControlFire:  {ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW},
}

// runner adapts a registry.Game to ebiten.Game.
type runner struct {
	game   registry.Game
	store  *storage.Store
	config core.RuntimeConfig
	opts   Options

	sink   lcd.Recorder
	input  core.InputFrame
	state  core.GameState
	paused bool
}

// Update samples the keyboard and advances the simulation by one tick.
func (r *runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) && !r.state.GameOver {
		r.paused = !r.paused
		r.updateTitle()
	}
	if r.paused {
		return nil
	}

	r.input.Clear()
	for c, keys := range controlKeys {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				r.input.Set(core.Control(c))
			}
		}
	}

	prev := r.state
	result := r.game.Step(r.input)
	r.state = result.State

	if result.RoundEnded {
		r.saveRound()
	}
	if prev.Score != r.state.Score || prev.Lives != r.state.Lives || prev.GameOver != r.state.GameOver {
		r.updateTitle()
	}
	return nil
}

// Draw copies the current frame onto the logical screen.
func (r *runner) Draw(screen *ebiten.Image) {
	if err := r.game.Render(&r.sink); err != nil {
		return
	}
	frame := r.sink.Last()
	screen.WritePixels(frame.Image(r.opts.Palette).Pix)
}

// Layout fixes the logical screen to the LCD size; ebiten scales it to the window.
func (r *runner) Layout(_, _ int) (int, int) {
	return lcd.Width, lcd.Height
}

func (r *runner) updateTitle() {
	title := fmt.Sprintf("%s  SCORE %d  LIVES %d", r.game.Title(), r.state.Score, r.state.Lives)
	if r.paused {
		title += "  PAUSED"
	}
	ebiten.SetWindowTitle(title)
}

// saveRound records the finished round. Failures are logged and ignored.
func (r *runner) saveRound() {
	s := r.state
	if r.opts.Logger != nil {
		r.opts.Logger.Info("round ended", "player", r.opts.Player, "score", s.Score, "kills", s.Kills, "ticks", s.Ticks)
	}
	if r.store == nil || s.Score == 0 {
		return
	}
	_, err := r.store.SaveRound(storage.RoundResult{
		GameID: r.game.ID(),
		Player: r.opts.Player,
		Score:  s.Score,
		Kills:  s.Kills,
		Lives:  s.Lives,
		Ticks:  s.Ticks,
		Seed:   r.config.Seed,
	})
	if err != nil && r.opts.Logger != nil {
		r.opts.Logger.Warn("could not save score", "error", err)
	}
}

// withDefaults fills in zero settings. A zero seed becomes a time-based one.
func withDefaults(cfg core.RuntimeConfig, opts Options) (core.RuntimeConfig, Options) {
	cfg.Seed = core.ResolveSeed(cfg.Seed)
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if opts.Scale <= 0 {
		opts.Scale = DefaultScale
	}
	if opts.Player == "" {
		opts.Player = "local"
	}
	if opts.Palette == (lcd.Palette{}) {
		opts.Palette = lcd.GreenPalette
	}
	return cfg, opts
}

// Run opens the window and blocks until it is closed.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	cfg, opts = withDefaults(cfg, opts)

	game.Reset(cfg)
	r := &runner{
		game:   game,
		store:  store,
		config: cfg,
		opts:   opts,
		input:  core.NewInputFrame(),
		state:  game.State(),
	}

	ebiten.SetWindowSize(lcd.Width*opts.Scale, lcd.Height*opts.Scale)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(cfg.TickRate)
	r.updateTitle()

	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
