/*
Package sqlite persists named rule-configuration presets.

PURPOSE:
  Pay runs themselves are never stored - the engine recomputes a batch
  from scratch every time. What users do keep are rule configurations:
  the jurisdiction presets (thresholds, night window, premium percentages,
  holiday lists) they switch between. This package stores those presets.

SCHEMA:
  presets:
    id          TEXT PRIMARY KEY   (uuid)
    name        TEXT NOT NULL
    config_json TEXT NOT NULL      (serialized config DTO)
    created_at  TIMESTAMP

  The configuration travels as opaque JSON so the schema never chases the
  rule set; the API layer owns the (de)serialization.

WAL MODE:
  SQLite is opened with WAL for better concurrency: readers don't block,
  single writer at a time, better crash recovery. A sync.RWMutex guards
  the handle on top of that.

USAGE:
  store, err := sqlite.New("./data/payroll.db")   // or ":memory:"
  if err != nil { ... }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool with versioned migrations.
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ErrPresetNotFound is returned when no preset exists for an ID.
var ErrPresetNotFound = errors.New("preset not found")

// Preset is a stored rule configuration.
type Preset struct {
	ID         string
	Name       string
	ConfigJSON string
	CreatedAt  time.Time
}

// Store persists presets in SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New opens (or creates) the database at dbPath and migrates the schema.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS presets (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			config_json TEXT NOT NULL,
			created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_presets_name ON presets(name);
	`)
	return err
}

// Close closes the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// =============================================================================
// PRESET CRUD
// =============================================================================

// SavePreset inserts a preset, or replaces it when the ID already exists.
func (s *Store) SavePreset(ctx context.Context, p Preset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO presets (id, name, config_json, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET name = excluded.name, config_json = excluded.config_json
	`, p.ID, p.Name, p.ConfigJSON, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save preset %s: %w", p.ID, err)
	}
	return nil
}

// GetPreset fetches one preset by ID.
func (s *Store) GetPreset(ctx context.Context, id string) (Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var p Preset
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, config_json, created_at FROM presets WHERE id = ?
	`, id).Scan(&p.ID, &p.Name, &p.ConfigJSON, &p.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Preset{}, ErrPresetNotFound
	}
	if err != nil {
		return Preset{}, fmt.Errorf("failed to get preset %s: %w", id, err)
	}
	return p, nil
}

// ListPresets returns all presets, newest first.
func (s *Store) ListPresets(ctx context.Context) ([]Preset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, config_json, created_at FROM presets
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list presets: %w", err)
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		var p Preset
		if err := rows.Scan(&p.ID, &p.Name, &p.ConfigJSON, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan preset: %w", err)
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

// DeletePreset removes a preset by ID.
func (s *Store) DeletePreset(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM presets WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete preset %s: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrPresetNotFound
	}
	return nil
}
