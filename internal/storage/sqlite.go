// Package storage persists best scores and the run history.
// The SQLite store uses the pure-Go modernc.org/sqlite driver to avoid CGO;
// SaveData is a gdata-backed fallback that keeps only best scores.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// migrations are applied in order; PRAGMA user_version records how many ran.
var migrations = []string{
	`CREATE TABLE runs (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id   TEXT    NOT NULL,
		score     INTEGER NOT NULL,
		played_at INTEGER NOT NULL
	);
	CREATE INDEX idx_runs_top ON runs(game_id, score DESC);`,

	`CREATE TABLE best_scores (
		game_id    TEXT PRIMARY KEY,
		score      INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	);`,
}

// Store keeps the run history and best scores of every variant in SQLite.
// It is safe for concurrent use by several sessions.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Run is one finished run.
type Run struct {
	ID       int64
	GameID   string
	Score    int
	PlayedAt time.Time
}

// Stats aggregates the runs of one variant.
type Stats struct {
	GameID     string
	Runs       int
	Best       int // Stored best, which may exceed every recorded run
	Average    float64
	LastPlayed time.Time
}

// Open opens the database at path, creating it and its parent directories
// when missing. A leading ~ is expanded to the home directory.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// SSH sessions share one store; serialise writers on a single connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db, now: time.Now}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: %s: %w", path, err)
	}
	return s, nil
}

func expandHome(path string) (string, error) {
	rest, ok := strings.CutPrefix(path, "~")
	if !ok {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, rest), nil
}

func (s *Store) migrate() error {
	var version int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	for i := version; i < len(migrations); i++ {
		tx, err := s.db.Begin()
		if err != nil {
			return err
		}
		if _, err := tx.Exec(migrations[i]); err != nil {
			tx.Rollback() //nolint:errcheck // the migration error is what matters
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
		// PRAGMA does not take bind parameters.
		if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", i+1)); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("migration %d: %w", i+1, err)
		}
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// SaveScore records a finished run and returns its ID.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO runs (game_id, score, played_at) VALUES (?, ?, ?)",
		gameID, score, s.now().UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return res.LastInsertId()
}

// TopScores returns up to limit runs of the game, best first and earliest
// first among equal scores. A non-positive limit means 10.
func (s *Store) TopScores(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, score, played_at FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r := Run{GameID: gameID}
		var playedAt int64
		if err := rows.Scan(&r.ID, &r.Score, &playedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan run: %w", err)
		}
		r.PlayedAt = time.UnixMilli(playedAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// BestScore returns the stored best score of the game, or 0.
func (s *Store) BestScore(gameID string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM best_scores WHERE game_id = ?", gameID).Scan(&score)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, nil
	case err != nil:
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return score, nil
}

// RecordBest stores score as the game's best unless a higher one is stored.
func (s *Store) RecordBest(gameID string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (game_id, score, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(game_id) DO UPDATE SET
		   score = MAX(score, excluded.score),
		   updated_at = excluded.updated_at`,
		gameID, score, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// ClearScores deletes the run history of the game. The best score is
// kept so it never goes down on an installation.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats aggregates the recorded runs of the game.
func (s *Store) Stats(gameID string) (Stats, error) {
	st := Stats{GameID: gameID}
	var last sql.NullInt64
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), MAX(played_at)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&st.Runs, &st.Best, &st.Average, &last)
	if err != nil {
		return Stats{}, fmt.Errorf("storage: cannot aggregate runs: %w", err)
	}
	if last.Valid {
		st.LastPlayed = time.UnixMilli(last.Int64)
	}

	best, err := s.BestScore(gameID)
	if err != nil {
		return Stats{}, err
	}
	st.Best = max(st.Best, best)
	return st, nil
}
