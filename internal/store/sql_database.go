package store

import (
	"database/sql"

	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/migrations"
)

// DB wraps a *sql.DB with the error classifier and logger shared by the
// repositories built on it.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Migrate applies the server schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrateLocal applies the client key-value schema.
func (db *DB) MigrateLocal() error {
	return migrations.MigrateLocal(db.DB)
}

// retryable reports whether err is worth retrying. It is logged alongside
// query failures.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
