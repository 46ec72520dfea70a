package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-invaders/internal/core"
	"github.com/vovakirdan/lcd-invaders/internal/games/invaders"
	"github.com/vovakirdan/lcd-invaders/internal/platform/window"
	"github.com/vovakirdan/lcd-invaders/internal/registry"
)

var flagWindowScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Play LCD Invaders in a desktop window. Keys are read as truly held,
so movement is smoother than in the terminal.

Controls:
  Left/A, Right/D   - Move
  Space/Up/W        - Fire
  P                 - Pause
  Esc/Q             - Quit

Examples:
  invaders window
  invaders window --scale 10 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().IntVar(&flagWindowScale, "scale", window.DefaultScale, "Pixels per LCD pixel")
}

func runWindow(_ *cobra.Command, _ []string) error {
	if _, err := loadGameConfig(); err != nil {
		return err
	}

	game, err := registry.Create(invaders.ID)
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := core.RuntimeConfig{TickRate: flagTPS, Seed: flagSeed}
	opts := window.Options{
		Scale:  flagWindowScale,
		Player: playerName(),
		Logger: logger,
	}
	if err := window.Run(game, store, cfg, opts); err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
