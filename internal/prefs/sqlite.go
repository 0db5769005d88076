package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"

	"github.com/zjrosen/parley/internal/log"
)

// SQLiteStore keeps preferences in a local SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if needed) the database at path and applies
// pending migrations.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	log.Debug(log.CatDB, "Opening database", "path", path)
	dsn := "file:" + path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.ErrorErr(log.CatDB, "Failed to open database", err, "path", path)
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		log.ErrorErr(log.CatDB, "Failed to ping database", err, "path", path)
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if err := Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info(log.CatDB, "Connected to database", "path", path)
	return &SQLiteStore{db: db, path: path}, nil
}

// Path is the database file.
func (s *SQLiteStore) Path() string { return s.path }

func (s *SQLiteStore) Get(ctx context.Context, category, name string) (string, error) {
	var v string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM preferences WHERE category = ? AND name = ?`, category, name).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("reading preference %s/%s: %w", category, name, err)
	}
	return v, nil
}

func (s *SQLiteStore) Set(ctx context.Context, category, name, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (category, name, value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (category, name) DO UPDATE
		SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		category, name, value)
	if err != nil {
		return fmt.Errorf("writing preference %s/%s: %w", category, name, err)
	}
	return nil
}

func (s *SQLiteStore) Delete(ctx context.Context, category, name string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM preferences WHERE category = ? AND name = ?`, category, name); err != nil {
		return fmt.Errorf("deleting preference %s/%s: %w", category, name, err)
	}
	return nil
}

func (s *SQLiteStore) List(ctx context.Context, category string) ([]Preference, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT category, name, value FROM preferences WHERE category = ? ORDER BY name`, category)
	if err != nil {
		return nil, fmt.Errorf("listing preferences %s: %w", category, err)
	}
	defer func() { _ = rows.Close() }()

	var out []Preference
	for rows.Next() {
		var p Preference
		if err := rows.Scan(&p.Category, &p.Name, &p.Value); err != nil {
			return nil, fmt.Errorf("scanning preference: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
