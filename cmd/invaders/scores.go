package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lcd-invaders/internal/games/invaders"
	"github.com/vovakirdan/lcd-invaders/internal/platform/tui"
	"github.com/vovakirdan/lcd-invaders/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded rounds.

Examples:
  invaders scores
  invaders scores --limit 25
  invaders scores --tui
  invaders scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearScores(invaders.ID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", invaders.ID)
		return nil
	}

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, invaders.ID, playerName(), width, height)
	}

	scores, err := store.TopScores(invaders.ID, flagScoresLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - LCD Invaders")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'invaders play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Kills", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %s\n", "----", "------", "-----", "-----", "----")
	for i, entry := range scores {
		fmt.Printf("  %-4d  %-12s  %-6d  %-5d  %s\n",
			i+1, entry.Player, entry.Score, entry.Kills, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	if best, err := store.PlayerBest(invaders.ID, playerName()); err == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Your best: %d\n", best)
	}
	return nil
}
