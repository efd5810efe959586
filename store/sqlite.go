package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Compile-time interface check.
var _ Store = (*SQLiteStore)(nil)

const sqliteBackend = "sqlite"

// SQLiteStore is a persistent Store backed by SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at the given path and
// initialises the schema. Use ":memory:" for an in-memory SQLite database.
func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("pagetracker/store: open sqlite: %w", err)
	}

	// SQLite serialises writers anyway, and every ":memory:" connection
	// would otherwise get its own empty database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS page_counters (
			key   TEXT PRIMARY KEY,
			count INTEGER NOT NULL DEFAULT 0
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("pagetracker/store: create table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Increment atomically adds one to the counter for key.
func (s *SQLiteStore) Increment(ctx context.Context, key string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO page_counters (key, count) VALUES (?, 1)
		ON CONFLICT (key) DO UPDATE SET count = count + 1
		RETURNING count`, key,
	).Scan(&count)
	if err != nil {
		return 0, &Error{Backend: sqliteBackend, Op: "incr", Key: key, Err: err}
	}
	return count, nil
}

// Get returns the current counter value for key.
func (s *SQLiteStore) Get(ctx context.Context, key string) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx,
		`SELECT count FROM page_counters WHERE key = ?`, key,
	).Scan(&count)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, &Error{Backend: sqliteBackend, Op: "get", Key: key, Err: err}
	}
	return count, nil
}

// Reset removes the counter for the given key.
func (s *SQLiteStore) Reset(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM page_counters WHERE key = ?`, key); err != nil {
		return &Error{Backend: sqliteBackend, Op: "del", Key: key, Err: err}
	}
	return nil
}

// Close closes the underlying SQLite database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
