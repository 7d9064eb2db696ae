package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/scobrodev/logbook/pkg/types"
)

// dbFileName is the single relational store under the data directory.
const dbFileName = "logbook.db"

// timeLayout is the storage format for all timestamps. The fraction is
// fixed-width so that lexicographic ordering of the TEXT column matches
// chronological ordering; values are always stored in UTC.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store owns the SQLite handle and provides the entity repositories,
// relation management, and aggregation queries. Callers are expected to
// serialize access; the Store itself performs no locking beyond the
// transactions around compound operations.
type Store struct {
	db *sql.DB
}

// Open creates the data directory if needed, opens the database with
// foreign-key enforcement enabled, and creates all tables idempotently.
func Open(config types.Config) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(config.DataDir, dbFileName)
	dsn := "file:" + dbPath + "?_pragma=foreign_keys(1)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	for _, stmt := range schemaDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create tables: %w", err)
		}
	}
	for _, stmt := range indexDDL {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("create indexes: %w", err)
		}
	}

	return &Store{db: db}, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// execer is satisfied by both *sql.DB and *sql.Tx so repository helpers
// can run standalone or inside a compound-command transaction.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// newID generates an opaque unique identifier for a new row.
func newID() string {
	return uuid.NewString()
}

// formatTime renders a timestamp for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// parseTime reads a stored timestamp back into a time.Time.
func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse stored timestamp: %w", err)
	}
	return t, nil
}

// formatTimePtr renders an optional timestamp; nil maps to SQL NULL.
func formatTimePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatTime(*t)
}

// parseTimePtr reads an optional stored timestamp.
func parseTimePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseTime(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// rowExists reports whether the given table contains a row with the id.
func rowExists(q execer, table, idColumn, id string) (bool, error) {
	var one int
	err := q.QueryRow("SELECT 1 FROM "+table+" WHERE "+idColumn+" = ?", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking %s existence: %w", table, err)
	}
	return true, nil
}
