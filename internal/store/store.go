package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// Store holds inspection points and groups in a SQLite database.
//
// A Store is an explicitly passed handle with an externally managed
// lifetime: opened once, scoped to the work that needs it, and closed on
// all exit paths. Queries treat the contents as a consistent read-only
// snapshot.
type Store struct {
	db *sql.DB
}

// Open creates or opens a SQLite database at the given path and applies
// the schema. Idempotent - safe to call against an existing database.
//
// Connectivity failures are reported as *UnavailableError.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &UnavailableError{Err: fmt.Errorf("open database: %w", err)}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &UnavailableError{Err: fmt.Errorf("connect: %w", err)}
	}

	// SQLite supports a single writer; one connection avoids SQLITE_BUSY
	// during bulk loads.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, &UnavailableError{Err: err}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, &UnavailableError{Err: fmt.Errorf("apply schema: %w", err)}
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}

	return nil
}
