// Package storage provides SQLite-based persistence for recorded replays.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-flappy/internal/replay"
)

// ErrReplayNotFound is returned when no replay has the requested ID.
var ErrReplayNotFound = errors.New("storage: replay not found")

// timeLayout is fixed-width so recorded_at sorts correctly as text.
const timeLayout = "2006-01-02 15:04:05.000000000"

// Store manages the SQLite database connection for replay persistence.
type Store struct {
	db *sql.DB
}

// ReplaySummary is a replay listing entry without the recorded input.
type ReplaySummary struct {
	ID         int64
	Player     string
	Score      int
	Ticks      uint64
	RecordedAt time.Time
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
		CREATE TABLE IF NOT EXISTS replays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			player TEXT NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			frames TEXT NOT NULL,
			draws TEXT NOT NULL,
			recorded_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_replays_recorded_at ON replays(recorded_at DESC);
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

// SaveReplay stores a finished replay and returns its ID. rp.ID is set on success.
func (s *Store) SaveReplay(rp *replay.Replay) (int64, error) {
	frames, err := json.Marshal(rp.Frames)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode frames: %w", err)
	}
	draws, err := json.Marshal(rp.Draws)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot encode draws: %w", err)
	}

	recordedAt := rp.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	result, err := s.db.Exec(
		`INSERT INTO replays (player, score, ticks, frames, draws, recorded_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rp.Player, rp.Score, int64(rp.Ticks), string(frames), string(draws),
		recordedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save replay: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	rp.ID = id
	return id, nil
}

// Replay loads a replay with its recorded input.
func (s *Store) Replay(id int64) (*replay.Replay, error) {
	var (
		rp         replay.Replay
		ticks      int64
		frames     string
		draws      string
		recordedAt any
	)

	err := s.db.QueryRow(
		`SELECT id, player, score, ticks, frames, draws, recorded_at
		 FROM replays
		 WHERE id = ?`,
		id,
	).Scan(&rp.ID, &rp.Player, &rp.Score, &ticks, &frames, &draws, &recordedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: id %d", ErrReplayNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replay: %w", err)
	}

	if err := json.Unmarshal([]byte(frames), &rp.Frames); err != nil {
		return nil, fmt.Errorf("storage: cannot decode frames of replay %d: %w", id, err)
	}
	if err := json.Unmarshal([]byte(draws), &rp.Draws); err != nil {
		return nil, fmt.Errorf("storage: cannot decode draws of replay %d: %w", id, err)
	}
	rp.Ticks = uint64(ticks)
	rp.RecordedAt = parseTime(recordedAt)

	return &rp, nil
}

// ListReplays returns the most recent replays, newest first.
func (s *Store) ListReplays(limit int) ([]ReplaySummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, player, score, ticks, recorded_at
		 FROM replays
		 ORDER BY recorded_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query replays: %w", err)
	}
	defer rows.Close()

	var entries []ReplaySummary
	for rows.Next() {
		var e ReplaySummary
		var ticks int64
		var recordedAt any
		if err := rows.Scan(&e.ID, &e.Player, &e.Score, &ticks, &recordedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.RecordedAt = parseTime(recordedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteReplay removes a replay.
func (s *Store) DeleteReplay(id int64) error {
	res, err := s.db.Exec("DELETE FROM replays WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete replay: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: id %d", ErrReplayNotFound, id)
	}
	return nil
}

// parseTime handles both driver-decoded times and stored text.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		for _, layout := range []string{timeLayout, time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, v); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}
