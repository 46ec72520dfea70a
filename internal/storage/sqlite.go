// Package storage provides SQLite-based persistence for finished rounds
// and high scores. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// DefaultPath is where scores are kept unless --db says otherwise.
const DefaultPath = "~/.lcd-invaders/invaders.db"

// sqliteTime is the layout SQLite uses for CURRENT_TIMESTAMP.
const sqliteTime = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// RoundResult describes a finished round.
type RoundResult struct {
	GameID string
	Player string // SSH user, or "local" for the terminal and window front-ends
	Score  int
	Kills  int // Aliens destroyed
	Lives  int // Lives shown when the round ended
	Ticks  int // Round length in simulation ticks
	Seed   int64
}

// ScoreEntry represents a single stored round.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Player    string
	Score     int
	Kills     int
	Ticks     int
	Seed      int64
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT 'local',
			score INTEGER NOT NULL,
			kills INTEGER NOT NULL DEFAULT 0,
			lives_left INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_game_id ON rounds(game_id);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(game_id, score DESC);
		CREATE INDEX IF NOT EXISTS idx_rounds_player ON rounds(game_id, player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(r RoundResult) (int64, error) {
	if r.GameID == "" {
		return 0, errors.New("storage: round has no game ID")
	}
	if r.Player == "" {
		r.Player = "local"
	}

	result, err := s.db.Exec(
		`INSERT INTO rounds (game_id, player, score, kills, lives_left, ticks, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Player, r.Score, r.Kills, r.Lives, r.Ticks, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N rounds for the given game.
// Results are ordered by score descending, older rounds first on ties.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, player, score, kills, ticks, seed, created_at
		 FROM rounds
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Player, &e.Score, &e.Kills, &e.Ticks, &e.Seed, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no scores exist.
func (s *Store) HighScore(gameID string) (int, error) {
	return s.maxScore("SELECT MAX(score) FROM rounds WHERE game_id = ?", gameID)
}

// PlayerBest returns the best score of one player.
// Returns 0 if the player has no rounds.
func (s *Store) PlayerBest(gameID, player string) (int, error) {
	return s.maxScore("SELECT MAX(score) FROM rounds WHERE game_id = ? AND player = ?", gameID, player)
}

// maxScore runs a MAX(score) query, mapping an empty result to 0.
func (s *Store) maxScore(query string, args ...any) (int, error) {
	var score sql.NullInt64
	if err := s.db.QueryRow(query, args...).Scan(&score); err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return int(score.Int64), nil
}

// ClearScores deletes all rounds for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM rounds WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	Rounds     int
	Players    int
	HighScore  int
	AvgScore   float64
	TotalKills int64
	Wins       int // Rounds that ended with every alien destroyed
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
// aliens is the formation size used to recognise cleared boards.
func (s *Store) GetGameStats(gameID string, aliens int) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT player), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(SUM(kills), 0),
		        COALESCE(SUM(CASE WHEN kills >= ? THEN 1 ELSE 0 END), 0),
		        MAX(created_at)
		 FROM rounds WHERE game_id = ?`,
		aliens, gameID,
	).Scan(&stats.Rounds, &stats.Players, &stats.HighScore, &stats.AvgScore,
		&stats.TotalKills, &stats.Wins, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime converts a DATETIME column, which the driver may hand back
// either as time.Time or as text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTime, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
