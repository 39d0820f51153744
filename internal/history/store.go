// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists a record of completed conversions in a local
// SQLite database so a surveyor can see what was converted, when, and how
// many records each file carried.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/adlenadlen/xyzconv/pkg/types"
)

// Record is one completed conversion.
type Record struct {
	ID          int64
	Input       string
	Output      string
	Source      types.Format
	Target      types.Format
	Points      int
	Skipped     int
	ConvertedAt time.Time
}

// Store manages the conversion history SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the history database at cfg.Path, creating
// the schema if it does not exist.
func NewStore(cfg types.HistoryConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
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
		`CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			input TEXT NOT NULL,
			output TEXT NOT NULL,
			source TEXT NOT NULL,
			target TEXT NOT NULL,
			points INTEGER NOT NULL,
			skipped INTEGER NOT NULL,
			converted_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_converted_at ON conversions(converted_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Add appends a conversion record. A zero ConvertedAt is stamped with the
// current time.
func (s *Store) Add(ctx context.Context, rec Record) error {
	ts := rec.ConvertedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (input, output, source, target, points, skipped, converted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Input, rec.Output, string(rec.Source), string(rec.Target),
		rec.Points, rec.Skipped, ts.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}
	return nil
}

// List returns the most recent records, newest first. A limit of 0 or
// less returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	q := `SELECT id, input, output, source, target, points, skipped, converted_at
	      FROM conversions ORDER BY id DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var src, dst, ts string
		if err := rows.Scan(&rec.ID, &rec.Input, &rec.Output, &src, &dst,
			&rec.Points, &rec.Skipped, &ts); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		rec.Source = types.Format(src)
		rec.Target = types.Format(dst)
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.ConvertedAt = t
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all records and returns how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM conversions`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return n, nil
}
