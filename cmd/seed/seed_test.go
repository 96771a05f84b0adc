package main

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/mock"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var seedToday = time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestDemoItems(t *testing.T) {
	items := demoItems(seedToday)

	require.Len(t, items, 8)
	byName := make(map[string]string, len(items))
	for _, item := range items {
		byName[item.Name] = item.ExpiryDate
	}

	assert.Equal(t, "2028-06-15", byName["Passport"])
	assert.Equal(t, "2026-01-06", byName["Gym membership"])
	assert.Equal(t, "2026-01-02", byName["Milk"])
	assert.Equal(t, "2026-01-05", byName["Netflix subscription"])
	assert.Equal(t, "2026-01-11", byName["Medicine"])
}

func TestSeeder(t *testing.T) {
	demo := models.User{Email: "demo@example.com", Password: "demo1234"}

	t.Run("creates user and items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mock.NewMockAuthService(ctrl)
		items := mock.NewMockItemService(ctrl)

		auth.EXPECT().RegisterUser(gomock.Any(), demo).Return(models.User{UserID: 5, Email: demo.Email}, nil)
		items.EXPECT().Create(gomock.Any(), int64(5), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int64, in models.ItemInput) (models.ClassifiedItem, error) {
				return models.ClassifiedItem{Item: models.Item{Name: in.Name, ExpiryDate: in.ExpiryDate}}, nil
			}).Times(8)

		s := &seeder{auth: auth, items: items, logger: logger.Nop()}
		n, err := s.seed(context.Background(), demo, seedToday)
		require.NoError(t, err)
		assert.Equal(t, 8, n)
	})

	t.Run("existing user is left alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mock.NewMockAuthService(ctrl)

		auth.EXPECT().RegisterUser(gomock.Any(), demo).
			Return(models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists))

		s := &seeder{auth: auth, items: mock.NewMockItemService(ctrl), logger: logger.Nop()}
		_, err := s.seed(context.Background(), demo, seedToday)
		assert.ErrorIs(t, err, errAlreadySeeded)
	})

	t.Run("stops at the first failing item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		auth := mock.NewMockAuthService(ctrl)
		items := mock.NewMockItemService(ctrl)

		auth.EXPECT().RegisterUser(gomock.Any(), demo).Return(models.User{UserID: 5}, nil)
		gomock.InOrder(
			items.EXPECT().Create(gomock.Any(), int64(5), gomock.Any()).Return(models.ClassifiedItem{}, nil),
			items.EXPECT().Create(gomock.Any(), int64(5), gomock.Any()).Return(models.ClassifiedItem{}, errors.New("db down")),
		)

		s := &seeder{auth: auth, items: items, logger: logger.Nop()}
		n, err := s.seed(context.Background(), demo, seedToday)
		assert.ErrorContains(t, err, `"Gym membership"`)
		assert.Equal(t, 1, n)
	})
}
