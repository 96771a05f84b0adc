package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/nudge/internal/mock"
	"github.com/MKhiriev/nudge/internal/validators"
	"github.com/MKhiriev/nudge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newValidatedItemService(ctrl *gomock.Controller) (ItemService, *mock.MockItemService) {
	inner := mock.NewMockItemService(ctrl)
	validator := validators.NewItemValidator(func() time.Time { return testToday })
	return NewItemValidationService(validator).Wrap(inner), inner
}

func TestItemValidationService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("sanitised input is passed on", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc, inner := newValidatedItemService(ctrl)

		want := models.ItemInput{Name: "Milk & eggs", ExpiryDate: "2026-01-02"}
		inner.EXPECT().Create(ctx, int64(1), want).Return(models.ClassifiedItem{}, nil)

		_, err := svc.Create(ctx, 1, models.ItemInput{Name: "  <b>Milk</b> & eggs ", ExpiryDate: "2026-01-02"})
		require.NoError(t, err)
	})

	tests := []struct {
		name    string
		userID  int64
		input   models.ItemInput
		wantErr error
	}{
		{"empty name", 1, models.ItemInput{Name: "<script></script>", ExpiryDate: "2026-01-02"}, validators.ErrEmptyName},
		{"bad date", 1, models.ItemInput{Name: "Milk", ExpiryDate: "02.01.2026"}, validators.ErrInvalidExpiryDate},
		{"date too far", 1, models.ItemInput{Name: "Milk", ExpiryDate: "2099-01-01"}, validators.ErrExpiryDateTooFar},
		{"no user", 0, models.ItemInput{Name: "Milk", ExpiryDate: "2026-01-02"}, validators.ErrInvalidUserID},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newValidatedItemService(ctrl)

			_, err := svc.Create(ctx, tt.userID, tt.input)
			assert.ErrorIs(t, err, ErrValidation)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestItemValidationService_IDs(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	svc, inner := newValidatedItemService(ctrl)

	assert.ErrorIs(t, svc.Archive(ctx, 1, 0), validators.ErrInvalidItemID)
	assert.ErrorIs(t, svc.Delete(ctx, -1, 3), validators.ErrInvalidUserID)

	_, err := svc.ListActive(ctx, 0, nil)
	assert.ErrorIs(t, err, ErrValidation)

	inner.EXPECT().Archive(ctx, int64(1), int64(3)).Return(nil)
	inner.EXPECT().ListArchived(ctx, int64(1)).Return(nil, nil)
	inner.EXPECT().ArchiveAll(ctx, int64(1)).Return(int64(2), nil)

	require.NoError(t, svc.Archive(ctx, 1, 3))
	_, err = svc.ListArchived(ctx, 1)
	require.NoError(t, err)
	n, err := svc.ArchiveAll(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
