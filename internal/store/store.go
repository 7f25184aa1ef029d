package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the database handle and provides access to repositories.
type Store struct {
	db *sqlx.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates the schema.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sqlx.DB for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// MasteryStore returns a MasteryStore backed by this store.
func (s *Store) MasteryStore() MasteryStore {
	return &sqlMasteryStore{db: s.db}
}

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() (EventRepo, error) {
	seq, err := newSequenceCounter(s.db)
	if err != nil {
		return nil, err
	}
	return &eventRepo{db: s.db, seq: seq}, nil
}

// applyPragmas configures SQLite for single-user performance.
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

// createSchema creates all tables if they don't exist. Timestamps are stored
// as RFC3339 text.
func createSchema(db *sqlx.DB) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS mastery_records (
			item_id TEXT PRIMARY KEY,
			strength INTEGER NOT NULL,
			last_seen_at TEXT NOT NULL,
			last_result TEXT NOT NULL,
			due_at TEXT NOT NULL,
			lapses INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS plan_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL,
			timestamp TEXT NOT NULL,
			session_id TEXT NOT NULL,
			module_id TEXT NOT NULL,
			item_ids TEXT NOT NULL,
			current_count INTEGER NOT NULL,
			review_count INTEGER NOT NULL,
			older_count INTEGER NOT NULL,
			expected_minutes REAL NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS attempt_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL,
			timestamp TEXT NOT NULL,
			session_id TEXT NOT NULL,
			item_id TEXT NOT NULL,
			result TEXT NOT NULL,
			ms_to_answer INTEGER NOT NULL,
			exercise_type TEXT NOT NULL,
			strength_delta INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS session_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL,
			timestamp TEXT NOT NULL,
			session_id TEXT NOT NULL,
			module_id TEXT NOT NULL,
			items_attempted INTEGER NOT NULL,
			correct_count INTEGER NOT NULL,
			xp_awarded INTEGER NOT NULL,
			mastery_delta INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS placement_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence INTEGER NOT NULL,
			timestamp TEXT NOT NULL,
			level TEXT NOT NULL,
			track TEXT NOT NULL,
			spirits TEXT NOT NULL,
			session_minutes INTEGER NOT NULL,
			start_module_id TEXT NOT NULL
		)`,
	}
	for _, q := range ddl {
		if _, err := db.Exec(q); err != nil {
			return fmt.Errorf("exec ddl: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. POURLY_DB environment variable
// 2. $XDG_DATA_HOME/pourly/pourly.db
// 3. ~/.local/share/pourly/pourly.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("POURLY_DB"); p != "" {
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

	p := filepath.Join(dataHome, "pourly", "pourly.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
