// Package invaders implements a Space Invaders-style game for a 128x64
// monochrome LCD. The player moves a ship along the bottom of the screen
// and shoots at a two-row formation of aliens that sweeps side to side,
// speeding up and descending every time it touches an edge.
package invaders

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vovakirdan/lcd-invaders/internal/config"
	"github.com/vovakirdan/lcd-invaders/internal/core"
	"github.com/vovakirdan/lcd-invaders/internal/lcd"
	"github.com/vovakirdan/lcd-invaders/internal/registry"
)

// Registry identity of this game.
const (
	ID    = "invaders"
	title = "LCD Invaders"
)

// Lines shown over the last frame when a round ends.
var gameOverText = [...]string{"Game Over", "Press any key to", "play again"}

// Tuning used by games created through the registry.
var (
	settingsMu sync.RWMutex
	settings   = config.DefaultInvadersConfig()
)

// SetConfig sets the tuning for games created through the registry.
func SetConfig(cfg config.InvadersConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

func currentConfig() config.InvadersConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: title}, func() registry.Game {
		return NewWithConfig(currentConfig())
	})
}

// phase is the engine state machine.
type phase int

const (
	phasePlaying      phase = iota
	phaseAwaitRelease       // Game over shown, waiting for all keys up
	phaseAwaitPress         // Waiting for any key to start a new round
)

// Game implements the invaders game logic.
type Game struct {
	cfg     config.InvadersConfig
	runtime core.RuntimeConfig

	model *Model
	firer *Firer
	buf   *lcd.PixelBuffer
	text  *lcd.TextWriter

	phase phase
	score int
	kills int
	round int
	ticks int
}

// New creates a game with the default tuning.
func New() *Game {
	return NewWithConfig(config.DefaultInvadersConfig())
}

// NewWithConfig creates a game with the given tuning. Call Reset before
// the first Step.
func NewWithConfig(cfg config.InvadersConfig) *Game {
	buf := lcd.NewPixelBuffer()
	return &Game{
		cfg:   cfg,
		model: NewModel(cfg),
		firer: NewFirer(0),
		buf:   buf,
		text:  lcd.NewTextWriter(buf),
		round: 1,
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return title
}

// Reset starts a new session: entities, score and RNG are reinitialized.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.firer = NewFirer(runtime.Seed)
	g.round = 1
	g.newRound()
}

// newRound reinitializes the entities for another round in the same session.
func (g *Game) newRound() {
	g.model.Reset()
	g.firer.Discard()
	g.buf.Clear()
	g.score = 0
	g.kills = 0
	g.ticks = 0
	g.phase = phasePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputState) core.StepResult {
	switch g.phase {
	case phaseAwaitRelease:
		if !in.AnyPressed() {
			g.phase = phaseAwaitPress
		}
		return core.StepResult{State: g.State()}
	case phaseAwaitPress:
		if in.AnyPressed() {
			g.round++
			g.newRound()
			return core.StepResult{State: g.State(), Restarted: true}
		}
		return core.StepResult{State: g.State()}
	}

	if g.tick(in) {
		g.endRound()
		return core.StepResult{State: g.State(), RoundEnded: true}
	}
	return core.StepResult{State: g.State()}
}

// tick runs one frame of play and reports whether the round ended.
func (g *Game) tick(in core.InputState) bool {
	m := g.model
	g.buf.Clear()
	g.ticks++

	g.moveShip(in)

	m.Cooldowns[SidePlayer].Tick()
	if in.Pressed(core.ControlFire) {
		m.FireBullet(SidePlayer, m.Ship.X+SpriteSize/2, m.Ship.Y)
	}

	if m.Ship.Vitality.Visible() {
		shipSprite.Draw(g.buf, int(m.Ship.X), int(m.Ship.Y))
	}
	if m.TickShipFlash() {
		if m.Ship.Lives <= 1 {
			return true
		}
		m.Ship.Lives--
		m.Ship.Vitality = AliveVitality()
		m.Cooldowns[SidePlayer].Disarm()
		m.Cooldowns[SideEnemy].Arm()
	}

	// Clearing the board also ends the round; there is no next level.
	if m.AliensRemaining == 0 {
		return true
	}

	if m.Cooldowns[SideEnemy].Tick() && m.AliensRemaining > 0 {
		g.firer.Select(m.AliensRemaining)
		m.Cooldowns[SideEnemy].Arm()
	}

	if g.sweepAliens() {
		return true
	}

	m.Formation.OffsetX += m.Formation.VelocityX

	g.moveBullets()
	return false
}

func (g *Game) moveShip(in core.InputState) {
	ship := &g.model.Ship
	x := int(ship.X)
	maxX := lcd.Width - SpriteSize
	if in.Pressed(core.ControlLeft) {
		x = core.Clamp(x-g.cfg.Ship.Step, 0, maxX)
	}
	if in.Pressed(core.ControlRight) {
		x = core.Clamp(x+g.cfg.Ship.Step, 0, maxX)
	}
	ship.X = uint8(x)
}

// sweepAliens draws, fires, bounces and collides the formation in slot
// order and reports whether an alien reached the ground.
func (g *Game) sweepAliens() bool {
	m := g.model
	f := &m.Formation
	bounced := false

	for i := range m.Aliens {
		if m.Aliens[i].Vitality.Visible() {
			x, y := m.AlienPosition(i)
			alienSprite.Draw(g.buf, x, y)

			if g.firer.Visit() {
				m.Bullets[SideEnemy].Spawn(uint8(x+SpriteSize/2), uint8(y+SpriteSize))
				m.Cooldowns[SideEnemy].Arm()
			}

			// Later aliens in this sweep already see the new offset.
			if !bounced && (x <= 0 || x+SpriteSize >= lcd.Width) {
				f.VelocityX *= -float32(g.cfg.Formation.SpeedMultiplier)
				f.OffsetY += float32(g.cfg.Formation.Descent)
				bounced = true
			}

			if y+SpriteSize >= lcd.Height {
				return true
			}

			m.CheckAlienHit(i, hitBox(x, y))
		}

		if m.TickAlienFlash(i) {
			g.kills++
			g.score += g.cfg.Scoring.PointsPerAlien
		}
	}

	g.firer.Discard()
	return false
}

func (g *Game) moveBullets() {
	m := g.model

	player := &m.Bullets[SidePlayer]
	for i := range player.slots {
		if b := player.slots[i]; b.Active {
			drawBullet(g.buf, int(b.X), int(b.Y))
		}
	}
	m.AdvanceBullets(SidePlayer, -g.cfg.Ship.BulletSpeed)

	enemy := &m.Bullets[SideEnemy]
	for i := range enemy.slots {
		if b := enemy.slots[i]; b.Active {
			drawBullet(g.buf, int(b.X), int(b.Y))
		}
	}
	m.AdvanceBullets(SideEnemy, g.cfg.Enemy.BulletSpeed)
	m.CheckShipHit(hitBox(int(m.Ship.X), int(m.Ship.Y)))
}

// endRound prints the game over banner over whatever the last tick drew.
// Each line is padded to the full width so it blanks its whole page.
func (g *Game) endRound() {
	g.phase = phaseAwaitRelease
	g.firer.Discard()
	for line, s := range gameOverText {
		g.text.DrawLine(fmt.Sprintf("%-*s", lcd.MaxLineChars, s), line)
	}
}

// Render hands the current frame to a display sink.
func (g *Game) Render(dst lcd.Blitter) error {
	return g.buf.Blit(dst)
}

// Frame returns a copy of the current frame.
func (g *Game) Frame() lcd.Frame {
	return g.buf.Export()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Kills:    g.kills,
		Lives:    int(g.model.Ship.Lives),
		Round:    g.round,
		Ticks:    g.ticks,
		GameOver: g.phase != phasePlaying,
	}
}

// Model exposes the entities for inspection by front-ends.
func (g *Game) Model() *Model {
	return g.model
}

// WaitForRestart blocks while the game over banner is shown, polling in
// every period until the player releases all controls and presses one
// again. It returns immediately if a round is in progress.
func (g *Game) WaitForRestart(ctx context.Context, in core.InputState, period time.Duration) error {
	if g.phase == phasePlaying {
		return nil
	}

	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if g.Step(in).Restarted {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

var _ registry.Game = (*Game)(nil)
