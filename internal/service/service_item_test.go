// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/nudge/internal/expiry"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/mock"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testToday = time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)

func testClassifier() *expiry.Classifier {
	return expiry.NewClassifier(
		expiry.WithClock(func() time.Time { return testToday }),
		expiry.WithLocation(time.UTC),
	)
}

func owned(id int64, name, date string) models.Item {
	owner := int64(1)
	return models.Item{ID: id, Name: name, ExpiryDate: date, OwnerID: &owner}
}

func ids(items []models.ClassifiedItem) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestItemService_ListActive(t *testing.T) {
	ctx := context.Background()

	t.Run("sorted by urgency and filtered", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockItemRepository(ctrl)
		svc := NewItemService(repo, testClassifier(), nil, logger.Nop())

		repo.EXPECT().ListActive(ctx, int64(1)).Return([]models.Item{
			owned(1, "Passport", "2028-06-15"),
			owned(2, "Milk", "2026-01-02"),
			owned(3, "Medicine", "2026-01-11"),
			owned(4, "Gym", "2025-12-30"),
		}, nil).Times(2)

		all, err := svc.ListActive(ctx, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, []int64{4, 2, 3, 1}, ids(all))
		assert.Equal(t, models.StatusCritical, all[0].Status)
		assert.Equal(t, -2, all[0].DaysUntilExpiry)

		filter := models.FilterPreference{Approaching: true, Safe: true}
		filtered, err := svc.ListActive(ctx, 1, &filter)
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 1}, ids(filtered))
	})

	t.Run("malformed dates are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockItemRepository(ctrl)
		svc := NewItemService(repo, testClassifier(), nil, logger.Nop())

		repo.EXPECT().ListActive(ctx, int64(1)).Return([]models.Item{
			owned(1, "Broken", "not-a-date"),
			owned(2, "Milk", "2026-01-02"),
		}, nil)

		items, err := svc.ListActive(ctx, 1, nil)
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, ids(items))
	})

	t.Run("names are decrypted and unreadable ones skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockItemRepository(ctrl)
		cipher := mock.NewMockFieldCipher(ctrl)
		svc := NewItemService(repo, testClassifier(), cipher, logger.Nop())

		repo.EXPECT().ListActive(ctx, int64(1)).Return([]models.Item{
			owned(1, "enc:v1:aaa", "2026-03-01"),
			owned(2, "enc:v1:bbb", "2026-03-02"),
		}, nil)
		cipher.EXPECT().Decrypt("enc:v1:aaa").Return("Passport", nil)
		cipher.EXPECT().Decrypt("enc:v1:bbb").Return("", errors.New("bad tag"))

		items, err := svc.ListActive(ctx, 1, nil)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Passport", items[0].Name)
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockItemRepository(ctrl)
		svc := NewItemService(repo, testClassifier(), nil, logger.Nop())

		repo.EXPECT().ListActive(ctx, int64(1)).Return(nil, store.ErrExecutingQuery)

		_, err := svc.ListActive(ctx, 1, nil)
		assert.ErrorIs(t, err, store.ErrExecutingQuery)
	})
}

func TestItemService_ListArchived(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	svc := NewItemService(repo, testClassifier(), nil, logger.Nop())

	repo.EXPECT().ListArchived(ctx, int64(1)).Return([]models.Item{
		owned(1, "Old passport", "2025-01-01"),
		owned(2, "Old card", "2024-01-01"),
	}, nil)

	items, err := svc.ListArchived(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1}, ids(items))
}

func TestItemService_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	cipher := mock.NewMockFieldCipher(ctrl)
	svc := NewItemService(repo, testClassifier(), cipher, logger.Nop())

	cipher.EXPECT().Encrypt("Milk").Return("enc:v1:milk", nil)
	repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, item models.Item) (models.Item, error) {
		assert.Equal(t, "enc:v1:milk", item.Name)
		require.NotNil(t, item.OwnerID)
		assert.Equal(t, int64(9), *item.OwnerID)
		item.ID = 100
		return item, nil
	})
	cipher.EXPECT().Decrypt("enc:v1:milk").Return("Milk", nil)

	created, err := svc.Create(ctx, 9, models.ItemInput{Name: "Milk", ExpiryDate: "2026-01-02"})
	require.NoError(t, err)
	assert.Equal(t, int64(100), created.ID)
	assert.Equal(t, "Milk", created.Name)
	assert.Equal(t, models.StatusCritical, created.Status)
	assert.Equal(t, 1, created.DaysUntilExpiry)
}

func TestItemService_NotFoundIsMapped(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	svc := NewItemService(repo, testClassifier(), nil, logger.Nop())

	repo.EXPECT().Update(ctx, gomock.Any()).Return(models.Item{}, store.ErrItemNotFound)
	repo.EXPECT().Archive(ctx, int64(1), int64(2)).Return(store.ErrItemNotFound)
	repo.EXPECT().Delete(ctx, int64(1), int64(2)).Return(store.ErrItemNotFound)

	_, err := svc.Update(ctx, 1, 2, models.ItemInput{Name: "x", ExpiryDate: "2026-01-02"})
	assert.ErrorIs(t, err, ErrItemNotFound)
	assert.ErrorIs(t, svc.Archive(ctx, 1, 2), ErrItemNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 1, 2), ErrItemNotFound)
}

func TestItemService_BulkOperations(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockItemRepository(ctrl)
	svc := NewItemService(repo, testClassifier(), nil, logger.Nop())

	repo.EXPECT().ArchiveAll(ctx, int64(1)).Return(int64(3), nil)
	repo.EXPECT().DeleteAllArchived(ctx, int64(1)).Return(int64(0), store.ErrExecutingQuery)

	n, err := svc.ArchiveAll(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = svc.DeleteAllArchived(ctx, 1)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}
