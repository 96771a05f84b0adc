package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/nudge/internal/config"
	"github.com/MKhiriev/nudge/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository UserRepository
	ItemRepository ItemRepository
	Pinger         Pinger
	db             *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		ItemRepository: NewItemRepository(db, log),
		Pinger:         db,
		db:             db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// NewLocalKeyValue opens the client's on-device store. Paths ending in
// ".json" use a JSON file, [MemoryPath] keeps data in memory, anything
// else is a SQLite file.
func NewLocalKeyValue(ctx context.Context, cfg config.Local, log *logger.Logger) (KeyValue, error) {
	switch {
	case cfg.Path == "" || cfg.Path == MemoryPath:
		return NewMemoryKeyValue(), nil
	case strings.EqualFold(filepath.Ext(cfg.Path), ".json"):
		return NewFileKeyValue(cfg.Path)
	}

	db, err := NewConnectSQLite(ctx, cfg.Path, log)
	if err != nil {
		return nil, err
	}
	return NewSQLiteKeyValue(db), nil
}
