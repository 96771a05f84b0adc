package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/internal/validators"
	"github.com/MKhiriev/nudge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuestService(t *testing.T) (ItemSource, store.KeyValue) {
	t.Helper()

	kv := store.NewMemoryKeyValue()
	svc := NewGuestItemService(store.NewGuestItemRepository(kv), testClassifier(), logger.Nop()).(*guestItemService)
	svc.now = func() time.Time { return testToday }
	svc.validator = validators.NewItemValidator(svc.now)
	return svc, kv
}

func TestGuestItemService_Lifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestGuestService(t)

	passport, err := svc.Create(ctx, models.ItemInput{Name: "Passport", ExpiryDate: "2028-06-15"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), passport.ID)
	assert.Equal(t, models.StatusSafe, passport.Status)

	milk, err := svc.Create(ctx, models.ItemInput{Name: " Milk ", ExpiryDate: "2026-01-02"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), milk.ID)
	assert.Equal(t, "Milk", milk.Name)
	assert.Equal(t, models.StatusCritical, milk.Status)

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids(active))

	updated, err := svc.Update(ctx, 1, models.ItemInput{Name: "Passport", ExpiryDate: "2026-01-20"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproaching, updated.Status)
	assert.Equal(t, 19, updated.DaysUntilExpiry)

	require.NoError(t, svc.Archive(ctx, 2))
	assert.ErrorIs(t, svc.Archive(ctx, 2), ErrItemNotFound, "archived items cannot be archived again")

	active, err = svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(active))

	archived, err := svc.ListArchived(ctx)
	require.NoError(t, err)
	require.Len(t, archived, 1)
	require.NotNil(t, archived[0].ArchivedAt)
	assert.True(t, archived[0].ArchivedAt.Equal(testToday))

	n, err := svc.DeleteAllArchived(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = svc.ArchiveAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	require.NoError(t, svc.Delete(ctx, 1))
	assert.ErrorIs(t, svc.Delete(ctx, 1), ErrItemNotFound)

	third, err := svc.Create(ctx, models.ItemInput{Name: "Milk", ExpiryDate: "2026-01-03"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), third.ID, "ids restart once the list is empty")
}

func TestGuestItemService_Validation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestGuestService(t)

	_, err := svc.Create(ctx, models.ItemInput{Name: "", ExpiryDate: "2026-01-02"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Update(ctx, 7, models.ItemInput{Name: "Milk", ExpiryDate: "2026-01-02"})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestGuestItemService_SkipsInvalidStoredElements(t *testing.T) {
	ctx := context.Background()
	svc, kv := newTestGuestService(t)

	raw := []byte(`[
		{"id":1,"name":"Milk","expiry_date":"2026-01-02","user_id":null,"archived_at":null,"created_at":"2025-12-30T10:00:00Z","updated_at":"2025-12-30T10:00:00Z"},
		{"id":"two","name":"Bad","expiry_date":"2026-01-02","user_id":null,"archived_at":null,"created_at":"2025-12-30T10:00:00Z","updated_at":"2025-12-30T10:00:00Z"},
		{"id":3,"name":"Bad date","expiry_date":"tomorrow","user_id":null,"archived_at":null,"created_at":"2025-12-30T10:00:00Z","updated_at":"2025-12-30T10:00:00Z"}
	]`)
	require.NoError(t, kv.Set(ctx, store.GuestItemsKey, raw))

	active, err := svc.ListActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(active))

	created, err := svc.Create(ctx, models.ItemInput{Name: "Bread", ExpiryDate: "2026-01-04"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), created.ID)
}
