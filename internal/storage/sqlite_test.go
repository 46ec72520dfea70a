package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedDirs(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.lcd-invaders/test.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".lcd-invaders", "test.db")); err != nil {
		t.Errorf("database not created under HOME: %v", err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	rounds := []RoundResult{
		{GameID: "invaders", Player: "alice", Score: 10, Kills: 5},
		{GameID: "invaders", Player: "bob", Score: 18, Kills: 9, Lives: 2},
		{GameID: "invaders", Score: 4, Kills: 2},
		{GameID: "other", Score: 500},
	}
	for _, r := range rounds {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}

	scores, err := store.TopScores("invaders", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Sorted descending
	if scores[0].Score != 18 || scores[1].Score != 10 || scores[2].Score != 4 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
	if scores[0].Player != "bob" || scores[0].Kills != 9 {
		t.Errorf("top entry = %+v", scores[0])
	}
	if scores[2].Player != "local" {
		t.Errorf("Player = %q, expected default 'local'", scores[2].Player)
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreSaveRejectsMissingGame(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRound(RoundResult{Score: 1}); err == nil {
		t.Error("expected an error for a round without game ID")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRound(RoundResult{GameID: "invaders", Score: (i + 1) * 2})
	}

	scores, err := store.TopScores("invaders", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 10 || scores[1].Score != 8 || scores[2].Score != 6 {
		t.Errorf("Scores not in expected order: %v", scores)
	}

	// Non-positive limit falls back to 10
	all, _ := store.TopScores("invaders", 0)
	if len(all) != 5 {
		t.Errorf("Expected 5 scores, got %d", len(all))
	}
}

func TestStoreHighScoreAndPlayerBest(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("invaders")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRound(RoundResult{GameID: "invaders", Player: "alice", Score: 6})
	store.SaveRound(RoundResult{GameID: "invaders", Player: "alice", Score: 14})
	store.SaveRound(RoundResult{GameID: "invaders", Player: "bob", Score: 18})

	high, _ = store.HighScore("invaders")
	if high != 18 {
		t.Errorf("Expected high score of 18, got %d", high)
	}

	best, err := store.PlayerBest("invaders", "alice")
	if err != nil {
		t.Fatalf("PlayerBest() failed: %v", err)
	}
	if best != 14 {
		t.Errorf("PlayerBest(alice) = %d, expected 14", best)
	}
	if best, _ := store.PlayerBest("invaders", "carol"); best != 0 {
		t.Errorf("PlayerBest(carol) = %d, expected 0", best)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveRound(RoundResult{GameID: "invaders", Score: 2})
	store.SaveRound(RoundResult{GameID: "other", Score: 3})

	if err := store.ClearScores("invaders"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	if scores, _ := store.TopScores("invaders", 10); len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	if scores, _ := store.TopScores("other", 10); len(scores) != 1 {
		t.Error("Other games should not be affected by clearing")
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.GetGameStats("invaders", 9)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.Rounds != 0 || empty.HighScore != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveRound(RoundResult{GameID: "invaders", Player: "alice", Score: 18, Kills: 9})
	store.SaveRound(RoundResult{GameID: "invaders", Player: "alice", Score: 6, Kills: 3})
	store.SaveRound(RoundResult{GameID: "invaders", Player: "bob", Score: 0})

	stats, err := store.GetGameStats("invaders", 9)
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.Rounds != 3 || stats.Players != 2 {
		t.Errorf("Rounds/Players = %d/%d, expected 3/2", stats.Rounds, stats.Players)
	}
	if stats.HighScore != 18 || stats.TotalKills != 12 || stats.Wins != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 8 {
		t.Errorf("AvgScore = %v, expected 8", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}
