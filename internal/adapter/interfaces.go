// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the nudge server on behalf of the terminal
// client.
//
// [ServerAdapter] hides the REST API behind Go methods. Error values in
// errors.go are mapped from HTTP status codes by mapHTTPError so callers can
// use [errors.Is] (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/nudge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the nudge server API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "".
	Token() string

	// Register creates an account and stores the returned token.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, user models.User) (models.Token, error)

	ListActive(ctx context.Context, filter *models.FilterPreference) ([]models.ClassifiedItem, error)
	ListArchived(ctx context.Context) ([]models.ClassifiedItem, error)
	CreateItem(ctx context.Context, input models.ItemInput) (models.ClassifiedItem, error)
	UpdateItem(ctx context.Context, itemID int64, input models.ItemInput) (models.ClassifiedItem, error)
	ArchiveItem(ctx context.Context, itemID int64) error
	ArchiveAll(ctx context.Context) (int64, error)
	DeleteItem(ctx context.Context, itemID int64) error
	DeleteAllArchived(ctx context.Context) (int64, error)

	// Health fetches the server health report. A degraded server is not an
	// error.
	Health(ctx context.Context) (models.HealthReport, error)
}
