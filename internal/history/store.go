// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history records conversion runs in a SQLite database and exports
// them as YAML or JSON.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/convert-hub/pkg/types"
)

const (
	dbFile            = "history.db"
	defaultMaxResults = 20

	// timeLayout is fixed-width so created_at sorts lexically.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Store manages the history SQLite database.
type Store struct {
	db         *sql.DB
	dir        string
	maxResults int
}

// NewStore opens or creates dir/history.db and its schema.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, dir: cfg.Dir, maxResults: maxResults}
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

// Path returns the database file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, dbFile)
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			created_at TEXT NOT NULL,
			source_path TEXT,
			output_path TEXT,
			source_lang TEXT NOT NULL,
			target_lang TEXT NOT NULL,
			preserve_comments INTEGER NOT NULL,
			convert_oop INTEGER NOT NULL,
			optimize INTEGER NOT NULL,
			include_metadata INTEGER NOT NULL,
			status TEXT NOT NULL,
			message TEXT,
			input_bytes INTEGER,
			output_bytes INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_status ON runs(status)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_pair ON runs(source_lang, target_lang)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// NewEntry builds a HistoryEntry for a finished run. ID and CreatedAt are
// filled in.
func NewEntry(req types.ConversionRequest, res types.ConversionResult, sourcePath, outputPath string) types.HistoryEntry {
	return types.HistoryEntry{
		ID:          uuid.New().String(),
		CreatedAt:   time.Now().UTC(),
		SourcePath:  sourcePath,
		OutputPath:  outputPath,
		SourceLang:  req.SourceLang,
		TargetLang:  req.TargetLang,
		Settings:    req.Settings,
		Status:      res.Status,
		Message:     res.Message,
		InputBytes:  len(req.SourceText),
		OutputBytes: len(res.OutputText),
	}
}

// Record inserts an entry. Missing ID or CreatedAt are generated.
func (s *Store) Record(ctx context.Context, e types.HistoryEntry) (types.HistoryEntry, error) {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, created_at, source_path, output_path, source_lang, target_lang,
			preserve_comments, convert_oop, optimize, include_metadata,
			status, message, input_bytes, output_bytes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.CreatedAt.UTC().Format(timeLayout), e.SourcePath, e.OutputPath,
		string(e.SourceLang), string(e.TargetLang),
		e.Settings.PreserveComments, e.Settings.ConvertOOP, e.Settings.Optimize, e.Settings.IncludeMetadata,
		string(e.Status), e.Message, e.InputBytes, e.OutputBytes,
	)
	if err != nil {
		return e, fmt.Errorf("inserting run %s: %w", e.ID, err)
	}
	return e, nil
}

// Clear deletes every recorded run and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM runs`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return res.RowsAffected()
}
