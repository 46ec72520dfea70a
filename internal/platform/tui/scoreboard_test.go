package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/lcd-invaders/internal/storage"
)

func newTestBoard(t *testing.T) ScoreboardModel {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	for _, r := range []storage.RoundResult{
		{GameID: "invaders", Player: "ann", Score: 18, Kills: 9},
		{GameID: "invaders", Player: "bob", Score: 10, Kills: 5},
		{GameID: "invaders", Player: "ann", Score: 4, Kills: 2},
		{GameID: "other", Player: "ann", Score: 99},
	} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatalf("SaveRound() failed: %v", err)
		}
	}
	return NewScoreboardModel(store, "invaders", "ann", 120, 40)
}

func updateBoard(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	board, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return board
}

func TestScoreboardLoadsOneGame(t *testing.T) {
	m := newTestBoard(t)

	rows := m.table.Rows()
	if len(rows) != 3 {
		t.Fatalf("got %d rows, expected 3", len(rows))
	}
	if rows[0][1] != "ann" || rows[0][2] != "18" {
		t.Errorf("first row = %v, expected ann with 18", rows[0])
	}
	if m.stats == nil || m.stats.Rounds != 3 || m.stats.Wins != 1 {
		t.Errorf("stats = %+v", m.stats)
	}

	view := m.View()
	if !strings.Contains(view, "HIGH SCORES - INVADERS") || !strings.Contains(view, "Rounds") {
		t.Errorf("view missing title or stats:\n%s", view)
	}
}

func TestScoreboardOnlyMine(t *testing.T) {
	m := newTestBoard(t)

	m = updateBoard(t, m, runeKey('m'))
	rows := m.table.Rows()
	if len(rows) != 2 {
		t.Fatalf("got %d rows, expected 2", len(rows))
	}
	for _, r := range rows {
		if r[1] != "ann" {
			t.Errorf("row %v should belong to ann", r)
		}
	}
	if rows[1][0] != "2" {
		t.Errorf("ranks should be renumbered, got %q", rows[1][0])
	}

	m = updateBoard(t, m, runeKey('m'))
	if len(m.table.Rows()) != 3 {
		t.Error("toggling again should show every round")
	}
}

func TestScoreboardExit(t *testing.T) {
	m := newTestBoard(t)

	back := updateBoard(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !back.IsGoingBack() || back.IsQuitting() {
		t.Error("esc should go back")
	}
	if back.View() != "" {
		t.Error("view should be empty once closed")
	}

	quit := updateBoard(t, m, runeKey('q'))
	if !quit.IsQuitting() || quit.IsGoingBack() {
		t.Error("q should quit")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "invaders", "ann", 60, 20)

	if len(m.table.Rows()) != 0 {
		t.Error("expected no rows without a store")
	}
	if !strings.Contains(m.View(), "No scores recorded yet.") {
		t.Error("expected the empty message")
	}
}
