// Package storage provides high-score persistence backends and the run history.
// The sqlite backend uses the pure-Go modernc.org/sqlite driver to avoid CGO.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database holding the high score and finished runs.
type Store struct {
	db     *sql.DB
	logger *log.Logger
}

// Run is one finished game.
type Run struct {
	ID        int64
	RunID     string // UUID assigned when the run is saved
	Score     int
	Length    int           // Final snake length
	Ticks     uint64        // Steps taken
	Duration  time.Duration // Wall-clock time spent running
	CreatedAt time.Time
}

// Stats contains aggregated statistics over all runs.
type Stats struct {
	RunsCount  int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open creates or opens a SQLite database at the given path.
// It expands a leading ~, creates parent directories and runs migrations.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}

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

	store := &Store{
		db:     db,
		logger: log.WithPrefix("storage"),
	}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_score (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			score INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL UNIQUE,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL DEFAULT 1,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_score ON runs(score DESC);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
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

// HighScore returns the stored high score and whether one exists.
func (s *Store) HighScore() (int, bool, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM high_score WHERE id = 1").Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return score, true, nil
}

// LoadHighScore implements snake.HighScoreStore.
// Read failures are logged and reported as absence.
func (s *Store) LoadHighScore() (int, bool) {
	score, ok, err := s.HighScore()
	if err != nil {
		s.logger.Warn("could not load high score", "error", err)
		return 0, false
	}
	return score, ok
}

// StoreHighScore implements snake.HighScoreStore.
// The stored value is only ever raised, so concurrent sessions cannot lower it.
func (s *Store) StoreHighScore(score int) error {
	_, err := s.db.Exec(
		`INSERT INTO high_score (id, score, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at
		 WHERE excluded.score > high_score.score`,
		score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot store high score: %w", err)
	}
	return nil
}

// ResetHighScore removes the stored high score.
func (s *Store) ResetHighScore() error {
	if _, err := s.db.Exec("DELETE FROM high_score"); err != nil {
		return fmt.Errorf("storage: cannot reset high score: %w", err)
	}
	return nil
}

// SaveRun records a finished game and returns its run ID.
// A new UUID is assigned when run.RunID is empty.
func (s *Store) SaveRun(run Run) (string, error) {
	if run.RunID == "" {
		run.RunID = uuid.NewString()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (run_id, score, length, ticks, duration_ms) VALUES (?, ?, ?, ?, ?)`,
		run.RunID, run.Score, run.Length, int64(run.Ticks), run.Duration.Milliseconds(),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run.RunID, nil
}

// TopRuns retrieves the best runs, highest score first.
func (s *Store) TopRuns(limit int) ([]Run, error) {
	return s.queryRuns("ORDER BY score DESC, created_at ASC", limit)
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]Run, error) {
	return s.queryRuns("ORDER BY created_at DESC, id DESC", limit)
}

func (s *Store) queryRuns(order string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, run_id, score, length, ticks, duration_ms, created_at
		 FROM runs `+order+` LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks, durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.RunID, &r.Score, &r.Length, &ticks, &durationMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// ClearRuns deletes the whole run history.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// Stats retrieves aggregated statistics over all runs.
func (s *Store) Stats() (*Stats, error) {
	stats := &Stats{}
	var lastPlayed any

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0), MAX(created_at)
		 FROM runs`,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles the driver returning DATETIME columns as time.Time or text.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// expandHome expands a leading ~ to the home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
