package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the SQLite handle holding the phase history and settings.
type Database struct {
	DB   *sql.DB
	path string
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS phases (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		phase TEXT NOT NULL CHECK (phase IN ('work', 'break')),
		seconds INTEGER NOT NULL,
		completed_at INTEGER NOT NULL
	);`,
	`CREATE INDEX IF NOT EXISTS idx_phases_completed_at ON phases(completed_at);`,
	`CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT
	);`,
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	d := &Database{DB: db, path: path}
	if err := d.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) createTables(ctx context.Context) error {
	for _, query := range schema {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// Path returns the file the database was opened from.
func (d *Database) Path() string { return d.path }

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}
