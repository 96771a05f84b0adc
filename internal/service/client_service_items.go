package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/nudge/internal/adapter"
	"github.com/MKhiriev/nudge/internal/expiry"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/models"
)

// remoteItemService is the [ItemSource] of a signed-in client. The server
// classifies in its own time zone, so items are classified again against
// the client's today.
type remoteItemService struct {
	adapter    adapter.ServerAdapter
	classifier *expiry.Classifier
	logger     *logger.Logger
}

// NewRemoteItemService constructs an [ItemSource] backed by the server.
func NewRemoteItemService(serverAdapter adapter.ServerAdapter, classifier *expiry.Classifier, logger *logger.Logger) ItemSource {
	return &remoteItemService{adapter: serverAdapter, classifier: classifier, logger: logger}
}

func (s *remoteItemService) ListActive(ctx context.Context) ([]models.ClassifiedItem, error) {
	items, err := s.adapter.ListActive(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error fetching items: %w", mapAdapterError(err))
	}
	return s.reclassify(items), nil
}

func (s *remoteItemService) ListArchived(ctx context.Context) ([]models.ClassifiedItem, error) {
	items, err := s.adapter.ListArchived(ctx)
	if err != nil {
		return nil, fmt.Errorf("error fetching archived items: %w", mapAdapterError(err))
	}
	return s.reclassify(items), nil
}

func (s *remoteItemService) Create(ctx context.Context, input models.ItemInput) (models.ClassifiedItem, error) {
	item, err := s.adapter.CreateItem(ctx, input)
	if err != nil {
		return models.ClassifiedItem{}, mapAdapterError(err)
	}
	return s.classifier.Classify(item.Item)
}

func (s *remoteItemService) Update(ctx context.Context, itemID int64, input models.ItemInput) (models.ClassifiedItem, error) {
	item, err := s.adapter.UpdateItem(ctx, itemID, input)
	if err != nil {
		return models.ClassifiedItem{}, mapAdapterError(err)
	}
	return s.classifier.Classify(item.Item)
}

func (s *remoteItemService) Archive(ctx context.Context, itemID int64) error {
	return mapAdapterError(s.adapter.ArchiveItem(ctx, itemID))
}

func (s *remoteItemService) ArchiveAll(ctx context.Context) (int64, error) {
	n, err := s.adapter.ArchiveAll(ctx)
	return n, mapAdapterError(err)
}

func (s *remoteItemService) Delete(ctx context.Context, itemID int64) error {
	return mapAdapterError(s.adapter.DeleteItem(ctx, itemID))
}

func (s *remoteItemService) DeleteAllArchived(ctx context.Context) (int64, error) {
	n, err := s.adapter.DeleteAllArchived(ctx)
	return n, mapAdapterError(err)
}

func (s *remoteItemService) reclassify(items []models.ClassifiedItem) []models.ClassifiedItem {
	plain := make([]models.Item, len(items))
	for i, item := range items {
		plain[i] = item.Item
	}

	classified := make([]models.ClassifiedItem, 0, len(plain))
	for _, result := range s.classifier.ClassifyEach(plain) {
		if result.Err != nil {
			s.logger.Warn().Err(result.Err).Msg("skipping item from server")
			continue
		}
		classified = append(classified, result.Item)
	}
	return expiry.Sort(classified)
}

// mapAdapterError turns transport errors the UI reacts to into service
// errors.
func mapAdapterError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrItemNotFound, err)
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrValidation, err)
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrNoToken):
		return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}
	return err
}
