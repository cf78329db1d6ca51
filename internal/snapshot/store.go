// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package snapshot persists pipeline runs in a SQLite database so past
// design studies can be listed, re-read, and exported.
package snapshot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/skid-engine/pkg/types"
)

const dbFile = "skid.db"

// ErrNotFound reports a snapshot id with no stored run.
var ErrNotFound = errors.New("snapshot not found")

// Record is one stored pipeline run: the combined result and design report,
// plus the source of the main power ("simulated", "estimated", or "manual"
// for operator-supplied powers).
type Record struct {
	ID        string               `json:"id" yaml:"id"`
	CreatedAt time.Time            `json:"created_at" yaml:"created_at"`
	Source    string               `json:"source" yaml:"source"`
	Result    types.CombinedResult `json:"result" yaml:"result"`
	Design    types.DesignReport   `json:"design" yaml:"design"`
}

// Store manages the snapshot SQLite database.
type Store struct {
	db      *sql.DB
	dir     string
	maxList int
}

// NewStore opens or creates the snapshot database at cfg.Dir/skid.db. It
// creates the directory and the schema if they do not exist.
func NewStore(cfg types.StoreConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}

	dbPath := filepath.Join(cfg.Dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxList := cfg.MaxList
	if maxList <= 0 {
		maxList = 50
	}

	s := &Store{db: db, dir: cfg.Dir, maxList: maxList}
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
		`CREATE TABLE IF NOT EXISTS snapshots (
			id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL,
			source TEXT NOT NULL,
			main_power REAL NOT NULL,
			net_power REAL NOT NULL,
			annual_income REAL NOT NULL,
			unit_selection REAL NOT NULL,
			result TEXT NOT NULL,
			design TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_created_at ON snapshots(created_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save stores rec, assigning a fresh id and timestamp when rec carries none,
// and returns the record as stored. The headline numbers are denormalized
// into their own columns for listing without decoding the full result.
func (s *Store) Save(ctx context.Context, rec Record) (Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	resultJSON, err := json.Marshal(rec.Result)
	if err != nil {
		return Record{}, fmt.Errorf("encoding result: %w", err)
	}
	designJSON, err := json.Marshal(rec.Design)
	if err != nil {
		return Record{}, fmt.Errorf("encoding design report: %w", err)
	}

	sum := rec.Result.CalculationSummary
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO snapshots (id, created_at, source, main_power, net_power,
			annual_income, unit_selection, result, design)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.CreatedAt.Format(time.RFC3339Nano), rec.Source,
		sum.InputMainPower, sum.FinalNetPower, sum.AnnualIncome, sum.SelectedUnitPower,
		string(resultJSON), string(designJSON),
	)
	if err != nil {
		return Record{}, fmt.Errorf("inserting snapshot: %w", err)
	}
	return rec, nil
}

// Get returns the stored run with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, source, result, design FROM snapshots WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, fmt.Errorf("snapshot %s: %w", id, ErrNotFound)
		}
		return Record{}, fmt.Errorf("reading snapshot %s: %w", id, err)
	}
	return rec, nil
}

// List returns up to limit stored runs, newest first. A non-positive limit
// uses the store's configured default.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = s.maxList
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, source, result, design FROM snapshots
		 ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying snapshots: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var rec Record
	var createdAt, resultJSON, designJSON string
	if err := sc.Scan(&rec.ID, &createdAt, &rec.Source, &resultJSON, &designJSON); err != nil {
		return Record{}, err
	}

	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return Record{}, fmt.Errorf("parsing snapshot timestamp: %w", err)
	}
	rec.CreatedAt = t

	if err := json.Unmarshal([]byte(resultJSON), &rec.Result); err != nil {
		return Record{}, fmt.Errorf("decoding result: %w", err)
	}
	if err := json.Unmarshal([]byte(designJSON), &rec.Design); err != nil {
		return Record{}, fmt.Errorf("decoding design report: %w", err)
	}
	return rec, nil
}
