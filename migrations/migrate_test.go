// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// no expectations: goose's first query fails
	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")

	err = MigrateLocal(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrateLocal_CreatesKVTable(t *testing.T) {
	db, err := sql.Open("sqlite3", filepath.Join(t.TempDir(), "local.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, MigrateLocal(db))
	// running twice is a no-op
	require.NoError(t, MigrateLocal(db))

	_, err = db.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, "k", []byte("v"))
	require.NoError(t, err)
}

func TestServerMigrationsAreEmbedded(t *testing.T) {
	entries, err := serverMigrations.ReadDir(".")
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Contains(t, names, "00001_create_users.sql")
	assert.Contains(t, names, "00002_create_expiry_items.sql")
	assert.Contains(t, names, "00003_updated_at_trigger.sql")
}
