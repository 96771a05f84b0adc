// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/models"
)

// itemRepository is the PostgreSQL-backed implementation of
// [ItemRepository] over the "expiry_items" table.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] on db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (models.Item, error) {
	var (
		item       models.Item
		expiry     time.Time
		ownerID    sql.NullInt64
		archivedAt sql.NullTime
	)

	if err := row.Scan(&item.ID, &item.Name, &expiry, &ownerID, &archivedAt, &item.CreatedAt, &item.UpdatedAt); err != nil {
		return models.Item{}, err
	}

	item.ExpiryDate = expiry.Format(models.DateLayout)
	if ownerID.Valid {
		item.OwnerID = &ownerID.Int64
	}
	if archivedAt.Valid {
		item.ArchivedAt = &archivedAt.Time
	}
	return item, nil
}

// ListActive returns the user's items that are not archived.
func (r *itemRepository) ListActive(ctx context.Context, userID int64) ([]models.Item, error) {
	query, args, err := buildListItemsQuery(userID, false)
	if err != nil {
		return nil, err
	}
	return r.queryItems(ctx, "itemRepository.ListActive", userID, query, args)
}

// ListArchived returns the user's archived items.
func (r *itemRepository) ListArchived(ctx context.Context, userID int64) ([]models.Item, error) {
	query, args, err := buildListItemsQuery(userID, true)
	if err != nil {
		return nil, err
	}
	return r.queryItems(ctx, "itemRepository.ListArchived", userID, query, args)
}

// ListAllActive returns every user's active items. Used by background jobs.
func (r *itemRepository) ListAllActive(ctx context.Context) ([]models.Item, error) {
	query, args, err := buildListAllActiveQuery()
	if err != nil {
		return nil, err
	}
	return r.queryItems(ctx, "itemRepository.ListAllActive", 0, query, args)
}

func (r *itemRepository) queryItems(ctx context.Context, fn string, userID int64, query string, args []any) ([]models.Item, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute query for listing items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.Item, 0, 16)
	for rows.Next() {
		item, scanErr := scanItem(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", fn).Int64("user_id", userID).Msg("failed to scan item row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", fn).Int64("user_id", userID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// Get returns one of the user's items.
func (r *itemRepository) Get(ctx context.Context, userID, itemID int64) (models.Item, error) {
	query, args, err := buildGetItemQuery(userID, itemID)
	if err != nil {
		return models.Item{}, err
	}
	return r.queryItem(ctx, "itemRepository.Get", userID, query, args)
}

// Create inserts item and returns the stored row.
func (r *itemRepository) Create(ctx context.Context, item models.Item) (models.Item, error) {
	query, args, err := buildInsertItemQuery(item)
	if err != nil {
		return models.Item{}, err
	}

	var userID int64
	if item.OwnerID != nil {
		userID = *item.OwnerID
	}
	return r.queryItem(ctx, "itemRepository.Create", userID, query, args)
}

// Update changes the name and expiry date of the owner's item.
func (r *itemRepository) Update(ctx context.Context, item models.Item) (models.Item, error) {
	query, args, err := buildUpdateItemQuery(item)
	if err != nil {
		return models.Item{}, err
	}
	return r.queryItem(ctx, "itemRepository.Update", *item.OwnerID, query, args)
}

func (r *itemRepository) queryItem(ctx context.Context, fn string, userID int64, query string, args []any) (models.Item, error) {
	log := logger.FromContext(ctx)

	item, err := scanItem(r.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Item{}, ErrItemNotFound
	case err != nil:
		log.Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.retryable(err)).
			Msg("failed to query item")
		return models.Item{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return item, nil
}

// Archive moves the user's item into the archive.
func (r *itemRepository) Archive(ctx context.Context, userID, itemID int64) error {
	query, args, err := buildArchiveItemQuery(userID, itemID)
	if err != nil {
		return err
	}

	affected, err := r.exec(ctx, "itemRepository.Archive", userID, query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// ArchiveAll archives every active item of the user and returns how many
// were archived.
func (r *itemRepository) ArchiveAll(ctx context.Context, userID int64) (int64, error) {
	query, args, err := buildArchiveAllQuery(userID)
	if err != nil {
		return 0, err
	}
	return r.exec(ctx, "itemRepository.ArchiveAll", userID, query, args)
}

// Delete removes the user's item permanently.
func (r *itemRepository) Delete(ctx context.Context, userID, itemID int64) error {
	query, args, err := buildDeleteItemQuery(userID, itemID)
	if err != nil {
		return err
	}

	affected, err := r.exec(ctx, "itemRepository.Delete", userID, query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// DeleteAllArchived removes every archived item of the user and returns
// how many were removed.
func (r *itemRepository) DeleteAllArchived(ctx context.Context, userID int64) (int64, error) {
	query, args, err := buildDeleteAllArchivedQuery(userID)
	if err != nil {
		return 0, err
	}
	return r.exec(ctx, "itemRepository.DeleteAllArchived", userID, query, args)
}

func (r *itemRepository) exec(ctx context.Context, fn string, userID int64, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Int64("user_id", userID).
			Bool("retryable", r.retryable(err)).
			Msg("failed to execute statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", fn).Int64("user_id", userID).Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}
