package database

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3" // Required by the library implementation.
)

type Database struct {
	db     *sql.DB
	dbPath string
	log    *slog.Logger
}

//go:embed migrations/*.sql
var migrationsFS embed.FS

func New(ctx context.Context, dbPath string, log *slog.Logger) (*Database, error) {
	dbFile, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open DB file: %w", err)
	}
	// Every connection to ":memory:" is a separate database.
	dbFile.SetMaxOpenConns(1)

	d := &Database{db: dbFile, dbPath: dbPath, log: log}

	if err = d.applySchema(ctx); err != nil {
		if closeErr := dbFile.Close(); closeErr != nil {
			log.WarnContext(ctx, "Failed to close DB after schema error",
				"error", closeErr,
				"dbPath", dbPath)
		}

		return nil, err
	}

	return d, nil
}

func (d *Database) Close() error {
	return d.db.Close()
}

// applySchema brings the summaries table to the latest embedded migration.
// An up-to-date schema is not an error.
func (d *Database) applySchema(ctx context.Context) error {
	m, err := d.newMigrator()
	if err != nil {
		return err
	}

	applied := true
	if err = m.Up(); errors.Is(err, migrate.ErrNoChange) {
		applied = false
	} else if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, err := m.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		// Empty migration set; nothing to report.
	case err != nil:
		d.log.WarnContext(ctx, "Failed to read schema version",
			"error", err,
			"dbPath", d.dbPath)
	default:
		d.log.DebugContext(ctx, "Summary cache schema is ready",
			"dbPath", d.dbPath,
			"version", version,
			"dirty", dirty,
			"applied", applied)
	}

	return nil
}

func (d *Database) newMigrator() (*migrate.Migrate, error) {
	driver, err := sqlite3.WithInstance(d.db, &sqlite3.Config{})
	if err != nil {
		return nil, fmt.Errorf("create DB driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return nil, fmt.Errorf("load embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}

	return m, nil
}
