package prefs

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/zjrosen/parley/internal/log"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies every up migration newer than the recorded schema version.
// Each migration runs in its own transaction together with its version row.
func Migrate(ctx context.Context, db *sql.DB) error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}
	defer func() { _ = src.Close() }()
	return migrateFrom(ctx, db, src)
}

func migrateFrom(ctx context.Context, db *sql.DB, src source.Driver) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`); err != nil {
		return fmt.Errorf("creating schema_migrations: %w", err)
	}

	var current uint
	if err := db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}

	version, err := src.First()
	for err == nil {
		if version > current {
			if err := applyMigration(ctx, db, src, version); err != nil {
				return err
			}
		}
		version, err = src.Next(version)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("walking migrations: %w", err)
	}
	return nil
}

func applyMigration(ctx context.Context, db *sql.DB, src source.Driver, version uint) error {
	r, name, err := src.ReadUp(version)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading migration %d: %w", version, err)
	}
	body, err := io.ReadAll(r)
	_ = r.Close()
	if err != nil {
		return fmt.Errorf("reading migration %d: %w", version, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning migration %d: %w", version, err)
	}
	if _, err := tx.ExecContext(ctx, string(body)); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("applying migration %d (%s): %w", version, name, err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, version); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("recording migration %d: %w", version, err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing migration %d: %w", version, err)
	}
	log.Info(log.CatDB, "Applied migration", "version", version, "name", name)
	return nil
}

// SchemaVersion reports the highest applied migration.
func SchemaVersion(ctx context.Context, db *sql.DB) (uint, error) {
	var v uint
	err := db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_migrations`).Scan(&v)
	return v, err
}
