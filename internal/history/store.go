// File: store.go
// Title: SQLite History Store
// Description: Implements the SQLite-backed store for transpilation
//              and REPL history entries, including schema setup,
//              WAL-mode opening, inserts, recent-entry queries, and
//              pruning of old rows.
// Author: brahmic-lang maintainers
// Version: v0.1.0
// Created: 2026-06-19
// Modified: 2026-06-19
//
// Change History:
// - 2026-06-19 v0.1.0: Initial implementation

package history

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	coreerror "github.com/brahmic-lang/brahmic/internal/core/error"
)

// DefaultFileName is the history database file name inside the
// per-user brahmic directory.
const DefaultFileName = "history.db"

// Entry is one recorded transpilation or REPL input.
type Entry struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Python    string    `json:"python"`
	OK        bool      `json:"ok"`
	CreatedAt time.Time `json:"created_at"`
}

// Config holds store configuration.
type Config struct {
	// Path is the database file location. Empty resolves to
	// ~/.brahmic/history.db.
	Path string
}

// DefaultPath returns the per-user history database location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".brahmic", DefaultFileName)
	}
	return filepath.Join(home, ".brahmic", DefaultFileName)
}

// Store persists history entries in SQLite. Safe for concurrent use.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens (creating if necessary) the history database at the
// configured path and initializes the schema.
func Open(cfg Config) (*Store, error) {
	path := cfg.Path
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, coreerror.Wrap(err, "cannot create history directory").
			WithCode(coreerror.CodeDatabaseError).
			WithOperation("history.Open").
			WithDetail("path", path)
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, coreerror.Wrap(err, "cannot open history database").
			WithCode(coreerror.CodeDatabaseError).
			WithOperation("history.Open").
			WithDetail("path", path)
	}

	st := &Store{db: db}
	if err := st.initSchema(); err != nil {
		db.Close()
		return nil, coreerror.Wrap(err, "cannot initialize history schema").
			WithCode(coreerror.CodeDatabaseError).
			WithOperation("history.Open").
			WithDetail("path", path)
	}

	return st, nil
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS entries (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		python TEXT NOT NULL,
		ok INTEGER NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_entries_ok ON entries(ok);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Add records a new entry. A missing ID or timestamp is filled in.
func (s *Store) Add(ctx context.Context, entry *Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO entries (id, source, python, ok, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, entry.ID, entry.Source, entry.Python, boolToInt(entry.OK), entry.CreatedAt)

	if err != nil {
		return coreerror.Wrap(err, "cannot insert history entry").
			WithCode(coreerror.CodeDatabaseError).
			WithOperation("history.Store.Add")
	}

	return nil
}

// Recent returns up to limit entries, newest first. A non-positive
// limit returns the 50 most recent entries.
func (s *Store) Recent(ctx context.Context, limit int) ([]*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, python, ok, created_at
		FROM entries
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, coreerror.Wrap(err, "cannot query history entries").
			WithCode(coreerror.CodeDatabaseError).
			WithOperation("history.Store.Recent")
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var entry Entry
		var ok int
		if err := rows.Scan(&entry.ID, &entry.Source, &entry.Python, &ok, &entry.CreatedAt); err != nil {
			return nil, coreerror.Wrap(err, "cannot scan history entry").
				WithCode(coreerror.CodeDatabaseError).
				WithOperation("history.Store.Recent")
		}
		entry.OK = ok != 0
		entries = append(entries, &entry)
	}
	if err := rows.Err(); err != nil {
		return nil, coreerror.Wrap(err, "history query failed").
			WithCode(coreerror.CodeDatabaseError).
			WithOperation("history.Store.Recent")
	}

	return entries, nil
}

// Count returns the total number of stored entries.
func (s *Store) Count(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM entries`).Scan(&n)
	if err != nil {
		return 0, coreerror.Wrap(err, "cannot count history entries").
			WithCode(coreerror.CodeDatabaseError).
			WithOperation("history.Store.Count")
	}
	return n, nil
}

// Prune deletes entries older than the given age and returns how many
// rows were removed.
func (s *Store) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, coreerror.Wrap(err, "cannot prune history entries").
			WithCode(coreerror.CodeDatabaseError).
			WithOperation("history.Store.Prune")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, coreerror.Wrap(err, "cannot read pruned row count").
			WithCode(coreerror.CodeDatabaseError).
			WithOperation("history.Store.Prune")
	}
	return n, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
