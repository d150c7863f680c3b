package memory

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/membank-oss/membank/internal/errors"
)

// SQLiteStore persists documents in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the SQLite database at path.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document database: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate document database: %w", err)
	}

	return s, nil
}

// migrate creates the schema. It is the single place the documents table
// is defined; any future change is an additive migration here.
func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		primary_tag TEXT NOT NULL,
		content TEXT NOT NULL,
		metadata JSON NOT NULL,
		tags TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_documents_created_at ON documents(created_at);
	CREATE INDEX IF NOT EXISTS idx_documents_primary_tag ON documents(primary_tag);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Create appends one document record and returns its assigned id.
func (s *SQLiteStore) Create(doc *Document) (int64, error) {
	meta, err := json.Marshal(doc.Metadata)
	if err != nil {
		return 0, errors.Wrap(errors.CodeStoreFailure, "marshal metadata", err)
	}

	res, err := s.db.Exec(`
		INSERT INTO documents (title, primary_tag, content, metadata, tags)
		VALUES (?, ?, ?, ?, ?)
	`, doc.Title, doc.PrimaryTag, doc.Content, string(meta), doc.TagString())
	if err != nil {
		return 0, errors.Wrap(errors.CodeStoreFailure, "insert document", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Wrap(errors.CodeStoreFailure, "read inserted id", err)
	}
	return id, nil
}

// Recent returns up to limit documents, newest first.
func (s *SQLiteStore) Recent(limit int) ([]Document, error) {
	if limit <= 0 {
		return []Document{}, nil
	}

	rows, err := s.db.Query(`
		SELECT id, title, primary_tag, content, metadata, tags, created_at
		FROM documents
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, errors.Wrap(errors.CodeStoreFailure, "query recent documents", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

// ByTags returns up to limit documents carrying at least one of the
// requested tags, newest first. A requested tag matches only whole
// comma-delimited tokens of the stored tag list, never substrings.
// Matching is byte-exact and case-sensitive; instr avoids the wildcard
// and case-folding semantics LIKE would impose on the tag text.
func (s *SQLiteStore) ByTags(tags []string, limit int) ([]Document, error) {
	if len(tags) == 0 {
		return s.Recent(limit)
	}
	if limit <= 0 {
		return []Document{}, nil
	}

	conds := make([]string, 0, len(tags))
	args := make([]interface{}, 0, len(tags)+1)
	for _, tag := range tags {
		conds = append(conds, "instr(',' || tags || ',', ?) > 0")
		args = append(args, ","+tag+",")
	}
	args = append(args, limit)

	query := `
		SELECT id, title, primary_tag, content, metadata, tags, created_at
		FROM documents
		WHERE ` + strings.Join(conds, " OR ") + `
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.CodeStoreFailure, "query documents by tags", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

// Count returns the total number of stored documents.
func (s *SQLiteStore) Count() (int64, error) {
	var n int64
	if err := s.db.QueryRow("SELECT COUNT(*) FROM documents").Scan(&n); err != nil {
		return 0, errors.Wrap(errors.CodeStoreFailure, "count documents", err)
	}
	return n, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func scanDocuments(rows *sql.Rows) ([]Document, error) {
	docs := []Document{}
	for rows.Next() {
		var d Document
		var meta, tagString string
		if err := rows.Scan(&d.ID, &d.Title, &d.PrimaryTag, &d.Content, &meta, &tagString, &d.CreatedAt); err != nil {
			return nil, errors.Wrap(errors.CodeStoreFailure, "scan document row", err)
		}
		if err := json.Unmarshal([]byte(meta), &d.Metadata); err != nil {
			return nil, errors.Wrap(errors.CodeStoreFailure, "unmarshal metadata", err)
		}
		d.Tags = splitTags(tagString)
		docs = append(docs, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.CodeStoreFailure, "iterate document rows", err)
	}
	return docs, nil
}
