package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lcd-invaders/internal/core"
	"github.com/vovakirdan/lcd-invaders/internal/games/invaders"
	"github.com/vovakirdan/lcd-invaders/internal/platform/tui"
	"github.com/vovakirdan/lcd-invaders/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play LCD Invaders in the terminal. The 128x64 screen is drawn with
half-block characters, so the terminal must be at least 130x36.

Controls:
  Left/A, Right/D   - Move
  Space/Up          - Fire
  P/Esc             - Pause
  Tab               - High scores
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Terminals report key repeats but not releases, so a key counts as held
for a short while after each repeat.

Difficulty options:
  easy   - More lives, slower enemy fire, gentle speed-up
  normal - The values from the config file
  hard   - Fewer lives, rapid enemy fire, fast formation
  fixed  - The formation never speeds up

Examples:
  invaders play
  invaders play --difficulty easy
  invaders play --config ./my-invaders.yaml --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) error {
	if _, err := loadGameConfig(); err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	if width < tui.MinTermWidth || height < tui.MinTermHeight {
		logger.Warn("terminal is smaller than the screen", "have", fmt.Sprintf("%dx%d", width, height),
			"need", fmt.Sprintf("%dx%d", tui.MinTermWidth, tui.MinTermHeight))
	}

	game, err := registry.Create(invaders.ID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagTPS,
		Seed:     flagSeed,
	}
	if err := tui.Run(game, store, cfg, tui.Options{Player: playerName()}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
