// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/nudge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ItemRepository persists expiry items. Every method except ListAllActive
// is scoped to the owning user.
type ItemRepository interface {
	ListActive(ctx context.Context, userID int64) ([]models.Item, error)
	ListArchived(ctx context.Context, userID int64) ([]models.Item, error)
	ListAllActive(ctx context.Context) ([]models.Item, error)
	Get(ctx context.Context, userID, itemID int64) (models.Item, error)
	Create(ctx context.Context, item models.Item) (models.Item, error)
	Update(ctx context.Context, item models.Item) (models.Item, error)
	Archive(ctx context.Context, userID, itemID int64) error
	ArchiveAll(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, userID, itemID int64) error
	DeleteAllArchived(ctx context.Context, userID int64) (int64, error)
}

// Pinger checks that the database answers.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// KeyValue is the client's on-device key-value store.
// Get returns [ErrKeyNotFound] for absent keys.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
