package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lcd-invaders/internal/core"
	"github.com/vovakirdan/lcd-invaders/internal/lcd"
	"github.com/vovakirdan/lcd-invaders/internal/registry"
	"github.com/vovakirdan/lcd-invaders/internal/storage"
)

// keyHold is how long a key press keeps its control held. Terminals send
// repeats while a key is down but never a release, so the hold has to
// bridge the gap between repeats.
const keyHold = 300 * time.Millisecond

// Options customize a game session.
type Options struct {
	Player string      // Name stored with scores; "local" when empty
	Logger *log.Logger // Optional; logs finished rounds
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game   registry.Game
	store  *storage.Store
	config core.RuntimeConfig
	opts   Options

	mapper *KeyMapper
	held   *core.HeldInput
	sink   *lcd.Recorder
	help   help.Model

	board      *ScoreboardModel // Non-nil while the high score table is open
	wasPaused  bool             // Pause state to restore when the table closes
	gameState  core.GameState
	highScore  int
	width      int
	height     int
	paused     bool
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	cfg.Seed = core.ResolveSeed(cfg.Seed)
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}
	if opts.Player == "" {
		opts.Player = "local"
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:   game,
		store:  store,
		config: cfg,
		opts:   opts,
		mapper: NewKeyMapper(),
		held:   core.NewHeldInput(holdTicks(cfg.TickRate, keyHold)),
		sink:   &lcd.Recorder{},
		help:   h,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}

	m.game.Reset(cfg)
	m.gameState = m.game.State()
	if store != nil {
		if high, err := store.HighScore(game.ID()); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		if m.board != nil {
			board, _ := m.board.Update(msg)
			m.setBoard(board)
		}
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.mapper.Keys()

	if m.board != nil {
		return m.handleBoardKey(msg)
	}

	switch {
	case m.mapper.IsQuit(msg):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, keys.Scores):
		if m.store != nil {
			board := NewScoreboardModel(m.store, m.game.ID(), m.opts.Player, m.width, m.height)
			m.board = &board
			m.wasPaused = m.paused
			m.paused = true
			m.held.Release()
		}
		return m, nil
	case key.Matches(msg, keys.Pause):
		if !m.gameState.GameOver {
			m.paused = !m.paused
			m.held.Release()
		}
		return m, nil
	}

	if m.paused {
		return m, nil
	}

	// On the game over screen every key counts as "any key"
	if !m.mapper.PressHeld(msg, m.held) && m.gameState.GameOver {
		m.held.Press(core.ControlFire)
	}
	return m, nil
}

// handleBoardKey routes keys to the open high score table.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.mapper.Keys().Scores) {
		m.closeBoard()
		return m, nil
	}

	board, cmd := m.board.Update(msg)
	m.setBoard(board)

	switch {
	case m.board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case m.board.IsGoingBack():
		m.closeBoard()
		return m, nil
	}
	return m, ignoreQuit(cmd)
}

func (m *Model) setBoard(board tea.Model) {
	if b, ok := board.(ScoreboardModel); ok {
		m.board = &b
	}
}

func (m *Model) closeBoard() {
	m.board = nil
	m.paused = m.wasPaused
}

// ignoreQuit drops the quit command the scoreboard issues when it is
// closed, since here it is embedded rather than run as a program.
func ignoreQuit(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	return func() tea.Msg {
		msg := cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return nil
		}
		return msg
	}
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.held)
	m.held.Advance()
	m.gameState = result.State

	if result.RoundEnded {
		m.finishRound()
	}
	if result.Restarted {
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// finishRound saves the score of the round that just ended (once).
func (m *Model) finishRound() {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	s := m.gameState
	if s.Score > m.highScore {
		m.highScore = s.Score
	}
	if m.opts.Logger != nil {
		m.opts.Logger.Info("round ended",
			"player", m.opts.Player,
			"score", s.Score,
			"kills", s.Kills,
			"ticks", s.Ticks,
		)
	}

	if m.store == nil || s.Score == 0 {
		return
	}
	_, err := m.store.SaveRound(storage.RoundResult{
		GameID: m.game.ID(),
		Player: m.opts.Player,
		Score:  s.Score,
		Kills:  s.Kills,
		Lives:  s.Lives,
		Ticks:  s.Ticks,
		Seed:   m.config.Seed,
	})
	// Best-effort save, game continues regardless
	if err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not save score", "error", err)
	}
}

// saveScreenshot saves the current frame as ASCII art.
func (m *Model) saveScreenshot() {
	if err := m.game.Render(m.sink); err != nil {
		return
	}

	dir := filepath.Join(os.Getenv("HOME"), ".lcd-invaders", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	frame := m.sink.Last()

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(frame.String()+"\n"), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}
	if m.width > 0 && m.height > 0 && (m.width < MinTermWidth || m.height < MinTermHeight) {
		return renderTooSmall(m.width, m.height)
	}

	if err := m.game.Render(m.sink); err != nil {
		return warnStyle.Render(err.Error())
	}
	frame := m.sink.Last()

	var b strings.Builder
	b.WriteString(RenderHUD(m.game.Title(), m.gameState, m.highScore, m.paused))
	b.WriteString("\n")
	b.WriteString(RenderScreen(&frame))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.mapper.Keys())))
	return b.String()
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
