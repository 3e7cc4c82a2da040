// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists discovery runs in SQLite so past results can be
// listed and re-rendered without querying the suggestion services again.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/keyword-discovery/pkg/types"
)

// timeFormat is fixed-width so stored timestamps sort lexically.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// ErrNotFound is returned when no run matches the requested ID.
var ErrNotFound = errors.New("run not found")

// Store manages the run history database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at cfg.Path, creating parent
// directories and the schema as needed.
func Open(cfg types.StoreConfig) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("store path is empty")
	}
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
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
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			seed TEXT NOT NULL,
			service TEXT NOT NULL,
			deep INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			queries INTEGER NOT NULL DEFAULT 0,
			discovered INTEGER NOT NULL DEFAULT 0,
			failures TEXT,
			warnings TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS keywords (
			run_id TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			keyword TEXT NOT NULL,
			intent TEXT NOT NULL,
			PRIMARY KEY (run_id, position)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at)`,
		`CREATE INDEX IF NOT EXISTS idx_keywords_keyword ON keywords(keyword)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// SaveRun inserts run and its keywords. Saving a run whose ID already exists
// replaces it.
func (s *Store) SaveRun(ctx context.Context, run types.Run) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	failuresJSON, _ := json.Marshal(run.Failures)
	warningsJSON, _ := json.Marshal(run.Warnings)

	if _, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, run.ID); err != nil {
		return fmt.Errorf("deleting previous run: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, seed, service, deep, started_at, duration_ms, queries, discovered, failures, warnings)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Seed, run.Service, run.Deep,
		run.StartedAt.UTC().Format(timeFormat), run.Duration.Milliseconds(),
		run.Queries, run.Discovered, string(failuresJSON), string(warningsJSON),
	)
	if err != nil {
		return fmt.Errorf("inserting run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO keywords (run_id, position, keyword, intent) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, k := range run.Keywords {
		if _, err := stmt.ExecContext(ctx, run.ID, i, k.Keyword, string(k.Intent)); err != nil {
			return fmt.Errorf("inserting keyword %q: %w", k.Keyword, err)
		}
	}

	return tx.Commit()
}

// Summary is one line of run history.
type Summary struct {
	ID         string    `json:"id"`
	Seed       string    `json:"seed"`
	Service    string    `json:"service"`
	StartedAt  time.Time `json:"started_at"`
	Discovered int       `json:"discovered"`
	Kept       int       `json:"kept"`
}

// ListRuns returns the most recent runs first. A limit of zero or less
// returns all runs.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT r.id, r.seed, r.service, r.started_at, r.discovered, COUNT(k.position)
		 FROM runs r LEFT JOIN keywords k ON k.run_id = r.id
		 GROUP BY r.id
		 ORDER BY r.started_at DESC
		 LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing runs: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var started string
		if err := rows.Scan(&sum.ID, &sum.Seed, &sum.Service, &started, &sum.Discovered, &sum.Kept); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		t, err := time.Parse(timeFormat, started)
		if err != nil {
			return nil, fmt.Errorf("parsing started_at of run %s: %w", sum.ID, err)
		}
		sum.StartedAt = t
		out = append(out, sum)
	}
	return out, rows.Err()
}

// GetRun loads a run by full ID or unique ID prefix.
func (s *Store) GetRun(ctx context.Context, id string) (types.Run, error) {
	fullID, err := s.resolveID(ctx, id)
	if err != nil {
		return types.Run{}, err
	}

	var (
		run                    types.Run
		started                string
		durationMS             int64
		failuresJSON, warnJSON sql.NullString
	)
	err = s.db.QueryRowContext(ctx,
		`SELECT id, seed, service, deep, started_at, duration_ms, queries, discovered, failures, warnings
		 FROM runs WHERE id = ?`, fullID,
	).Scan(&run.ID, &run.Seed, &run.Service, &run.Deep, &started, &durationMS,
		&run.Queries, &run.Discovered, &failuresJSON, &warnJSON)
	if err != nil {
		return types.Run{}, fmt.Errorf("loading run %s: %w", fullID, err)
	}
	if run.StartedAt, err = time.Parse(timeFormat, started); err != nil {
		return types.Run{}, fmt.Errorf("parsing started_at of run %s: %w", fullID, err)
	}
	run.Duration = time.Duration(durationMS) * time.Millisecond
	if failuresJSON.Valid {
		if err := json.Unmarshal([]byte(failuresJSON.String), &run.Failures); err != nil {
			return types.Run{}, fmt.Errorf("decoding failures of run %s: %w", fullID, err)
		}
	}
	if warnJSON.Valid {
		if err := json.Unmarshal([]byte(warnJSON.String), &run.Warnings); err != nil {
			return types.Run{}, fmt.Errorf("decoding warnings of run %s: %w", fullID, err)
		}
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT keyword, intent FROM keywords WHERE run_id = ? ORDER BY position`, fullID)
	if err != nil {
		return types.Run{}, fmt.Errorf("loading keywords: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k types.ClassifiedKeyword
		var in string
		if err := rows.Scan(&k.Keyword, &in); err != nil {
			return types.Run{}, fmt.Errorf("scanning keyword: %w", err)
		}
		k.Intent = types.Intent(in)
		run.Keywords = append(run.Keywords, k)
		run.Tally.Add(k.Intent)
	}
	return run, rows.Err()
}

// resolveID expands a unique prefix to a full run ID.
func (s *Store) resolveID(ctx context.Context, prefix string) (string, error) {
	if prefix == "" {
		return "", ErrNotFound
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM runs WHERE substr(id, 1, ?) = ? LIMIT 2`, len(prefix), prefix)
	if err != nil {
		return "", fmt.Errorf("resolving run id: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	switch len(ids) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrNotFound, prefix)
	case 1:
		return ids[0], nil
	default:
		return "", fmt.Errorf("run id prefix %q is ambiguous", prefix)
	}
}
