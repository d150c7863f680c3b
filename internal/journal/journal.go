// Package journal keeps an append-only log of memory store operations
// in SQLite, so a caller can audit what was ingested and what context
// was handed out. Journal failures are reported but must never abort
// the operation being journaled.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/membank-oss/membank/internal/errors"
)

// Operation names recorded by the facade and CLI.
const (
	OpIngest   = "ingest"
	OpRetrieve = "retrieve"
	OpAssemble = "assemble"
)

// Entry is one journaled operation.
type Entry struct {
	ID        string    `json:"id"`
	Op        string    `json:"op"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// Journal records operations in a SQLite database.
type Journal struct {
	db *sql.DB
}

// Open opens (or creates) the journal database at path.
func Open(path string) (*Journal, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate journal database: %w", err)
	}

	return j, nil
}

func (j *Journal) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS operations (
		id TEXT PRIMARY KEY,
		op TEXT NOT NULL,
		detail TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_operations_created_at ON operations(created_at);
	`
	_, err := j.db.Exec(schema)
	return err
}

// Record appends one operation entry.
func (j *Journal) Record(op, detail string) error {
	_, err := j.db.Exec(`
		INSERT INTO operations (id, op, detail) VALUES (?, ?, ?)
	`, uuid.New().String(), op, detail)
	if err != nil {
		return errors.Wrap(errors.CodeJournalFailure, "record operation", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		return []Entry{}, nil
	}

	rows, err := j.db.Query(`
		SELECT id, op, detail, created_at
		FROM operations
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(errors.CodeJournalFailure, "query operations", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Op, &e.Detail, &e.CreatedAt); err != nil {
			return nil, errors.Wrap(errors.CodeJournalFailure, "scan operation row", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.CodeJournalFailure, "iterate operation rows", err)
	}
	return entries, nil
}

// Close closes the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}
