package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const kvTable = "kv"

// sqliteKeyValue keeps client data in the "kv" table of the local SQLite
// file.
type sqliteKeyValue struct {
	db *DB
}

// NewSQLiteKeyValue wraps an opened local database as a [KeyValue].
func NewSQLiteKeyValue(db *DB) KeyValue {
	return &sqliteKeyValue{db: db}
}

func (s *sqliteKeyValue) Get(ctx context.Context, key string) ([]byte, error) {
	query, args, err := sq.Select("value").From(kvTable).Where(sq.Eq{"key": key}).ToSql()
	if err != nil {
		return nil, wrapBuildErr(err)
	}

	var value []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, ErrKeyNotFound
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (s *sqliteKeyValue) Set(ctx context.Context, key string, value []byte) error {
	query, args, err := sq.Insert(kvTable).
		Columns("key", "value").
		Values(key, value).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP").
		ToSql()
	if err != nil {
		return wrapBuildErr(err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return nil
}

func (s *sqliteKeyValue) Close() error {
	return s.db.Close()
}
