package service

import (
	"context"

	"github.com/MKhiriev/nudge/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users and issues bearer tokens.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ItemService manages one user's expiry items. Every read returns items
// classified against today and sorted soonest first.
type ItemService interface {
	// ListActive returns the active items; a non-nil filter keeps only the
	// visible buckets.
	ListActive(ctx context.Context, userID int64, filter *models.FilterPreference) ([]models.ClassifiedItem, error)
	ListArchived(ctx context.Context, userID int64) ([]models.ClassifiedItem, error)
	Create(ctx context.Context, userID int64, input models.ItemInput) (models.ClassifiedItem, error)
	Update(ctx context.Context, userID, itemID int64, input models.ItemInput) (models.ClassifiedItem, error)
	Archive(ctx context.Context, userID, itemID int64) error
	ArchiveAll(ctx context.Context, userID int64) (int64, error)
	Delete(ctx context.Context, userID, itemID int64) error
	DeleteAllArchived(ctx context.Context, userID int64) (int64, error)
}

// AppInfoService reports build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService checks that the server can reach its database.
type HealthService interface {
	Check(ctx context.Context) models.HealthReport
}

// DigestService summarises the active items of every user.
type DigestService interface {
	CountByStatus(ctx context.Context) (map[models.Status]int, error)
}

// ItemSource is the client's item API for the current session, backed
// either by the server or by the on-device guest list. Reads return items
// classified against the client's today.
type ItemSource interface {
	ListActive(ctx context.Context) ([]models.ClassifiedItem, error)
	ListArchived(ctx context.Context) ([]models.ClassifiedItem, error)
	Create(ctx context.Context, input models.ItemInput) (models.ClassifiedItem, error)
	Update(ctx context.Context, itemID int64, input models.ItemInput) (models.ClassifiedItem, error)
	Archive(ctx context.Context, itemID int64) error
	ArchiveAll(ctx context.Context) (int64, error)
	Delete(ctx context.Context, itemID int64) error
	DeleteAllArchived(ctx context.Context) (int64, error)
}

// ClientAuthService manages the client session: signing in against the
// server, restoring a saved session, and guest mode.
type ClientAuthService interface {
	Register(ctx context.Context, user models.User) error
	Login(ctx context.Context, user models.User) error
	RestoreSession(ctx context.Context) (bool, error)
	Logout(ctx context.Context) error
	EnterGuestMode(ctx context.Context) error
	GuestMode(ctx context.Context) (bool, error)
}
