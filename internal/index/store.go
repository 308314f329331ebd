// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package index persists declared objects and builds a searchable index.
package index

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/rustmark/pkg/types"
)

const (
	indexDir = "index"
	dbFile   = "objects.db"
)

// Store manages the object index SQLite database.
type Store struct {
	db         *sql.DB
	outDir     string
	maxResults int
}

// NewStore opens or creates the object index database at
// outDir/index/objects.db, creating the schema if it does not exist.
func NewStore(cfg types.IndexConfig) (*Store, error) {
	dbDir := filepath.Join(cfg.OutDir, indexDir)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating index directory: %w", err)
	}

	dbPath := filepath.Join(dbDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{
		db:         db,
		outDir:     cfg.OutDir,
		maxResults: maxResults,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS objects (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			kind TEXT NOT NULL,
			display TEXT NOT NULL,
			doc TEXT NOT NULL,
			anchor TEXT NOT NULL,
			signature TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_objects_kind ON objects(kind)`,
		`CREATE INDEX IF NOT EXISTS idx_objects_doc ON objects(doc)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='objects_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE objects_fts USING fts5(name, display, content=objects, content_rowid=rowid)`,
			`CREATE TRIGGER objects_ai AFTER INSERT ON objects BEGIN
				INSERT INTO objects_fts(rowid, name, display) VALUES (new.rowid, new.name, new.display);
			END`,
			`CREATE TRIGGER objects_ad AFTER DELETE ON objects BEGIN
				INSERT INTO objects_fts(objects_fts, rowid, name, display) VALUES('delete', old.rowid, old.name, old.display);
			END`,
			`CREATE TRIGGER objects_au AFTER UPDATE ON objects BEGIN
				INSERT INTO objects_fts(objects_fts, rowid, name, display) VALUES('delete', old.rowid, old.name, old.display);
				INSERT INTO objects_fts(rowid, name, display) VALUES (new.rowid, new.name, new.display);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// IngestSummary holds counts from an index ingestion run.
type IngestSummary struct {
	Pages   int
	Objects int
}

// Ingest replaces the indexed entries for every page present in entries.
// Re-ingesting the same build output is idempotent: each page's old rows
// are dropped before its new rows are written, in one transaction.
func (s *Store) Ingest(ctx context.Context, entries []types.ObjectEntry) (IngestSummary, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	docs := make(map[string]bool)
	for _, entry := range entries {
		docs[entry.Doc] = true
	}
	for doc := range docs {
		if _, err := tx.ExecContext(ctx, `DELETE FROM objects WHERE doc = ?`, doc); err != nil {
			return IngestSummary{}, fmt.Errorf("deleting old entries for %s: %w", doc, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO objects (id, name, kind, display, doc, anchor, signature)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range entries {
		_, err := stmt.ExecContext(ctx,
			entry.ID, entry.Name, entry.Kind, entry.Display,
			entry.Doc, entry.Anchor, entry.Signature,
		)
		if err != nil {
			return IngestSummary{}, fmt.Errorf("inserting entry %s: %w", entry.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return IngestSummary{}, fmt.Errorf("committing ingest: %w", err)
	}

	return IngestSummary{Pages: len(docs), Objects: len(entries)}, nil
}
