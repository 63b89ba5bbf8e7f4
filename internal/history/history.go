// Package history keeps a local SQLite record of quiz attempts and a
// mirror of the last server-side progress snapshot, so the dashboard
// works offline and attempts survive between sessions.
package history

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/learnsphere/learnsphere-cli/internal/api"
)

// DB wraps a sql.DB with learnsphere-specific helpers.
type DB struct {
	*sql.DB
	path string
}

// Open creates or opens the cache database at the given path.
func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}

	sqlDB, err := sql.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening cache: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("pinging cache: %w", err)
	}

	d := &DB{DB: sqlDB, path: path}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

// OpenMemory creates an in-memory cache (useful for testing).
func OpenMemory() (*DB, error) {
	sqlDB, err := sql.Open("sqlite", ":memory:?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory cache: %w", err)
	}

	d := &DB{DB: sqlDB, path: ":memory:"}
	if err := d.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return d, nil
}

func (d *DB) migrate() error {
	_, err := d.Exec(schema)
	return err
}

const schema = `
CREATE TABLE IF NOT EXISTS quiz_attempts (
    id TEXT PRIMARY KEY,
    taken_at DATETIME NOT NULL DEFAULT (datetime('now')),
    topic TEXT NOT NULL,
    level TEXT NOT NULL,
    score REAL NOT NULL,
    total REAL NOT NULL,
    percentage REAL NOT NULL,
    xp_earned INTEGER NOT NULL DEFAULT 0,
    weak_areas TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_attempts_taken ON quiz_attempts(taken_at);
CREATE INDEX IF NOT EXISTS idx_attempts_topic ON quiz_attempts(topic);

CREATE TABLE IF NOT EXISTS progress_mirror (
    id INTEGER PRIMARY KEY CHECK(id = 1),
    synced_at DATETIME NOT NULL DEFAULT (datetime('now')),
    snapshot TEXT NOT NULL
);
`

// Attempt is one locally recorded quiz result.
type Attempt struct {
	ID         string
	TakenAt    time.Time
	Topic      string
	Level      api.Level
	Score      float64
	Total      float64
	Percentage float64
	XPEarned   int
	WeakAreas  []string
}

// RecordAttempt stores a quiz evaluation for the given topic.
func (d *DB) RecordAttempt(topic string, level api.Level, eval *api.Evaluation) (string, error) {
	weak, err := json.Marshal(eval.WeakAreas)
	if err != nil {
		return "", fmt.Errorf("encoding weak areas: %w", err)
	}

	id := uuid.NewString()
	_, err = d.Exec(
		`INSERT INTO quiz_attempts (id, topic, level, score, total, percentage, xp_earned, weak_areas)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		id, topic, string(level), eval.Score, eval.Total, eval.Percentage, eval.XPEarned, string(weak),
	)
	if err != nil {
		return "", fmt.Errorf("recording attempt: %w", err)
	}
	return id, nil
}

// RecentAttempts returns up to limit attempts, newest first.
func (d *DB) RecentAttempts(limit int) ([]Attempt, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.Query(
		`SELECT id, taken_at, topic, level, score, total, percentage, xp_earned, weak_areas
		 FROM quiz_attempts ORDER BY taken_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var a Attempt
		var level, weak string
		if err := rows.Scan(&a.ID, &a.TakenAt, &a.Topic, &level, &a.Score, &a.Total, &a.Percentage, &a.XPEarned, &weak); err != nil {
			return nil, fmt.Errorf("scanning attempt: %w", err)
		}
		a.Level = api.Level(level)
		if err := json.Unmarshal([]byte(weak), &a.WeakAreas); err != nil {
			a.WeakAreas = nil
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// TopicBest returns the best percentage recorded for a topic, or false
// if the topic has never been attempted.
func (d *DB) TopicBest(topic string) (float64, bool, error) {
	var best sql.NullFloat64
	err := d.QueryRow(`SELECT MAX(percentage) FROM quiz_attempts WHERE topic = ?`, topic).Scan(&best)
	if err != nil {
		return 0, false, fmt.Errorf("querying best score: %w", err)
	}
	if !best.Valid {
		return 0, false, nil
	}
	return best.Float64, true, nil
}

// SaveProgress mirrors the latest server progress snapshot.
func (d *DB) SaveProgress(p *api.Progress) error {
	snapshot, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding progress: %w", err)
	}
	_, err = d.Exec(
		`INSERT INTO progress_mirror (id, synced_at, snapshot) VALUES (1, datetime('now'), ?)
		 ON CONFLICT(id) DO UPDATE SET synced_at = datetime('now'), snapshot = excluded.snapshot`,
		string(snapshot),
	)
	if err != nil {
		return fmt.Errorf("saving progress mirror: %w", err)
	}
	return nil
}

// LoadProgress returns the mirrored snapshot, or false when nothing
// has been synced yet.
func (d *DB) LoadProgress() (*api.Progress, time.Time, bool, error) {
	var snapshot string
	var syncedAt time.Time
	err := d.QueryRow(`SELECT snapshot, synced_at FROM progress_mirror WHERE id = 1`).Scan(&snapshot, &syncedAt)
	if err == sql.ErrNoRows {
		return nil, time.Time{}, false, nil
	}
	if err != nil {
		return nil, time.Time{}, false, fmt.Errorf("loading progress mirror: %w", err)
	}

	var p api.Progress
	if err := json.Unmarshal([]byte(snapshot), &p); err != nil {
		return nil, time.Time{}, false, fmt.Errorf("decoding progress mirror: %w", err)
	}
	return &p, syncedAt, true, nil
}

// Reset deletes all locally cached attempts and the progress mirror.
func (d *DB) Reset() error {
	if _, err := d.Exec(`DELETE FROM quiz_attempts`); err != nil {
		return fmt.Errorf("clearing attempts: %w", err)
	}
	if _, err := d.Exec(`DELETE FROM progress_mirror`); err != nil {
		return fmt.Errorf("clearing progress mirror: %w", err)
	}
	return nil
}
