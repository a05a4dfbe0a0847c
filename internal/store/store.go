// Package store persists learner state in a local SQLite database. The
// profile is saved as versioned snapshots; everything that happens during
// practice lands in an append-only event log with a single global sequence
// across event types.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite connection and provides access to repositories.
type Store struct {
	db     *sqlx.DB
	events *EventLog
}

// Open creates a Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db, events: &EventLog{db: db}}, nil
}

// DB returns the underlying *sqlx.DB for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Profiles returns the profile snapshot repository.
func (s *Store) Profiles() *ProfileRepo {
	return &ProfileRepo{db: s.db}
}

// Events returns the event log backed by this store. Every call returns
// the same instance, so sequence allocation serializes in-process.
func (s *Store) Events() *EventLog {
	return s.events
}

// applyPragmas configures SQLite for single-user desktop use.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS global_sequence (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	next_val INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS profile_snapshots (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	sequence INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL,
	data TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS practice_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	sequence INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL,
	session_id TEXT NOT NULL,
	skill_id TEXT NOT NULL,
	exercise_id TEXT NOT NULL,
	source TEXT NOT NULL,
	passed INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS mastery_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	sequence INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL,
	skill_id TEXT NOT NULL,
	skill_name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS llm_request_events (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	sequence INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL,
	provider TEXT NOT NULL,
	model TEXT NOT NULL,
	purpose TEXT NOT NULL,
	input_tokens INTEGER NOT NULL,
	output_tokens INTEGER NOT NULL,
	latency_ms INTEGER NOT NULL,
	success INTEGER NOT NULL,
	error_message TEXT NOT NULL DEFAULT ''
);

INSERT OR IGNORE INTO global_sequence (id, next_val) VALUES (1, 1);
`

func migrate(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}

// Reset deletes all persisted state: snapshots, events, and the sequence
// counter. Irreversible.
func (s *Store) Reset() error {
	stmts := []string{
		"DELETE FROM profile_snapshots",
		"DELETE FROM practice_events",
		"DELETE FROM mastery_events",
		"DELETE FROM llm_request_events",
		"UPDATE global_sequence SET next_val = 1 WHERE id = 1",
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("%s: %w", stmt, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. ETUDE_DB environment variable
// 2. $XDG_DATA_HOME/etude/etude.db
// 3. ~/.local/share/etude/etude.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ETUDE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "etude", "etude.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
