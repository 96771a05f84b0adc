// Package migrations embeds the SQL schema of the server database and the
// client's local key-value store and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var serverMigrations embed.FS

//go:embed local/*.sql
var localMigrations embed.FS

var errNilDB = errors.New("migration error: db is nil")

// Migrate applies the PostgreSQL schema (users, expiry_items, triggers).
func Migrate(db *sql.DB) error {
	return up(db, serverMigrations, "pgx", ".")
}

// MigrateLocal applies the SQLite schema of the client key-value store.
func MigrateLocal(db *sql.DB) error {
	return up(db, localMigrations, "sqlite3", "local")
}

func up(db *sql.DB, fsys embed.FS, dialect, dir string) error {
	if db == nil {
		return errNilDB
	}

	goose.SetBaseFS(fsys)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
