// Package store persists leads with their serialized pricing snapshots.
// The snapshot payload is opaque here: the store never interprets it.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"moverz/internal/errors"
)

// Lead is one captured lead record.
type Lead struct {
	ID           int64           `json:"id"`
	CreatedAt    time.Time       `json:"created_at"`
	ContactEmail string          `json:"contact_email"`
	Snapshot     json.RawMessage `json:"snapshot"`
}

// Store wraps the sqlite database.
type Store struct {
	db *sql.DB
}

// Open opens a SQLite database, sets recommended pragmas, and validates
// connectivity.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.Storage("open sqlite database", err)
	}

	if _, err := db.Exec(`
		PRAGMA journal_mode = WAL;
		PRAGMA foreign_keys = ON;
		PRAGMA busy_timeout = 5000;
	`); err != nil {
		db.Close()
		return nil, errors.Storage("set sqlite pragmas", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Storage("ping sqlite database", err)
	}

	return &Store{db: db}, nil
}

// Migrate runs all pending SQL migrations found in migrationsDir.
func (s *Store) Migrate(migrationsDir string) error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return errors.Storage("set goose dialect", err)
	}
	if err := goose.Up(s.db, migrationsDir); err != nil {
		return errors.Storage("run goose up migrations", err)
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle for tests.
func (s *Store) DB() *sql.DB {
	return s.db
}

// SaveLead inserts a lead and returns its id.
func (s *Store) SaveLead(ctx context.Context, contactEmail string, snapshot json.RawMessage) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO leads (created_at, contact_email, snapshot) VALUES (?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), contactEmail, string(snapshot))
	if err != nil {
		return 0, errors.Storage("insert lead", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, errors.Storage("read lead id", err)
	}
	return id, nil
}

// GetLead returns one lead by id.
func (s *Store) GetLead(ctx context.Context, id int64) (*Lead, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, contact_email, snapshot FROM leads WHERE id = ?`, id)

	var lead Lead
	var createdAt, snapshot string
	if err := row.Scan(&lead.ID, &createdAt, &lead.ContactEmail, &snapshot); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NotFound("lead", "by id")
		}
		return nil, errors.Storage("scan lead", err)
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, errors.Storage("parse lead timestamp", err)
	}
	lead.CreatedAt = ts
	lead.Snapshot = json.RawMessage(snapshot)
	return &lead, nil
}

// ListLeads returns leads newest first.
func (s *Store) ListLeads(ctx context.Context, limit int) ([]Lead, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, contact_email, snapshot FROM leads ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, errors.Storage("list leads", err)
	}
	defer rows.Close()

	var leads []Lead
	for rows.Next() {
		var lead Lead
		var createdAt, snapshot string
		if err := rows.Scan(&lead.ID, &createdAt, &lead.ContactEmail, &snapshot); err != nil {
			return nil, errors.Storage("scan lead row", err)
		}
		ts, err := time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, errors.Storage("parse lead timestamp", err)
		}
		lead.CreatedAt = ts
		lead.Snapshot = json.RawMessage(snapshot)
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}
