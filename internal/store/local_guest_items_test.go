package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/nudge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestItemRepository_EmptyByDefault(t *testing.T) {
	repo := NewGuestItemRepository(NewMemoryKeyValue())

	items, errs := repo.Load(context.Background())
	assert.Empty(t, items)
	assert.Empty(t, errs)

	enabled, err := repo.GuestMode(context.Background())
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestGuestItemRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewGuestItemRepository(NewMemoryKeyValue())

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	archived := now.Add(time.Hour)
	items := []models.Item{
		{ID: 1, Name: "Milk", ExpiryDate: "2026-01-02", CreatedAt: now, UpdatedAt: now},
		{ID: 2, Name: "Passport", ExpiryDate: "2028-06-15", ArchivedAt: &archived, CreatedAt: now, UpdatedAt: now},
	}

	require.NoError(t, repo.Save(ctx, items))

	got, errs := repo.Load(ctx)
	require.Empty(t, errs)
	require.Len(t, got, 2)
	assert.Equal(t, "Milk", got[0].Name)
	assert.Nil(t, got[0].OwnerID)
	require.NotNil(t, got[1].ArchivedAt)
	assert.True(t, got[1].ArchivedAt.Equal(archived))
}

func TestGuestItemRepository_SkipsInvalidElements(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValue()
	raw := `[
		{"id":1,"name":"Milk","expiry_date":"2026-01-02","user_id":null,"archived_at":null,"created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-01T00:00:00Z"},
		{"id":"2","name":"Bad id","expiry_date":"2026-01-02","user_id":null,"archived_at":null,"created_at":"2026-01-01T00:00:00Z","updated_at":"2026-01-01T00:00:00Z"}
	]`
	require.NoError(t, kv.Set(ctx, GuestItemsKey, []byte(raw)))

	items, errs := NewGuestItemRepository(kv).Load(ctx)
	require.Len(t, items, 1)
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], models.ErrInvalidGuestItem)
}

func TestGuestItemRepository_GuestMode(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKeyValue()
	repo := NewGuestItemRepository(kv)

	require.NoError(t, repo.SetGuestMode(ctx, true))
	enabled, err := repo.GuestMode(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)

	require.NoError(t, kv.Set(ctx, GuestModeKey, []byte("maybe")))
	enabled, err = repo.GuestMode(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}
