// invaders runs the LCD Invaders simulation on a terminal, a desktop
// window, an SSH server or headless.
//
// Usage:
//
//	invaders list              - List registered games
//	invaders play              - Play in the terminal
//	invaders window            - Play in a desktop window
//	invaders serve             - Start SSH server for remote play
//	invaders scores            - Show high scores
//	invaders frame             - Run headless and export the final frame
//
// Global flags:
//
//	--tps <rate>    - Set tick rate (default: 20)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.lcd-invaders/invaders.db)
//	--verbose       - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-invaders/internal/config"
	"github.com/vovakirdan/lcd-invaders/internal/core"
	"github.com/vovakirdan/lcd-invaders/internal/games/invaders"
	"github.com/vovakirdan/lcd-invaders/internal/storage"
)

var (
	// Global flags
	flagTPS     int
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool

	// Game tuning flags, shared by the commands that run the game
	flagConfig     string
	flagDifficulty string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "invaders",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "LCD Invaders - a 128x64 monochrome space shooter",
	Long: `LCD Invaders simulates a small space shooter written for a 128x64
monochrome LCD. The same simulation can be played in the terminal, in a
desktop window or over SSH, and can be run headless to export frames.

Available commands:
  list     - Show registered games
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  frame    - Run headless and export the final frame

Examples:
  invaders play
  invaders play --difficulty hard
  invaders window --scale 8
  invaders serve --port 2222
  invaders frame --ticks 200 --seed 1 --ascii`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", core.DefaultTickRate, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(frameCmd)
}

// addGameFlags registers the tuning flags on a command that runs the game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// loadGameConfig resolves the tuning config from the flags and installs it
// for every game created afterwards.
func loadGameConfig() (config.InvadersConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.InvadersConfig{}, err
	}

	cfg, err := config.LoadInvaders(flagConfig)
	if err != nil {
		return config.InvadersConfig{}, err
	}
	config.ApplyInvadersPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.InvadersConfig{}, err
	}

	logger.Debug("config loaded",
		"path", flagConfig,
		"preset", preset,
		"lives", cfg.Ship.Lives,
		"enemy_wait", cfg.Enemy.FireWait,
		"speedup", !config.IsFixedPreset(preset) && cfg.Formation.SpeedMultiplier > 1,
	)
	invaders.SetConfig(cfg)
	return cfg, nil
}

// openStore opens the score database. A failure is logged and the game
// runs without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// playerName returns the name stored with local scores.
func playerName() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
