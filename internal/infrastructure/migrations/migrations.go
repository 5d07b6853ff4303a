// Package migrations provides database migration support for digitduel.
//
// It contains a SQLite migration driver compatible with ncruces/go-sqlite3
// (CGO-free). The stock golang-migrate/v4/database/sqlite3 driver cannot
// be used because it imports github.com/mattn/go-sqlite3, and both drivers
// register themselves as "sqlite3", which collides at init time.
//
// Usage:
//
//	db, _ := sql.Open("sqlite3", "file:path/to/db.sqlite")
//	err := migrations.RunMigrations(db)
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"io/fs"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var embeddedMigrationsFS embed.FS

// MigrationsFS returns the embedded filesystem containing migration SQL
// files, for tests and custom migration scenarios.
func MigrationsFS() fs.FS {
	return embeddedMigrationsFS
}

// RunMigrations applies all pending migrations to db using the embedded
// SQL files and the ncruces-compatible driver. migrate.ErrNoChange is
// treated as success so re-running on an up-to-date database is a no-op.
func RunMigrations(db *sql.DB) error {
	source, err := iofs.New(embeddedMigrationsFS, ".")
	if err != nil {
		return err
	}

	driver, err := WithInstance(db, &Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite3", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
