package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/nudge/internal/expiry"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/internal/validators"
	"github.com/MKhiriev/nudge/models"
)

// guestItemService keeps the items of a signed-out user on the device.
// Every change rewrites the whole list.
type guestItemService struct {
	mu         sync.Mutex
	repository *store.GuestItemRepository
	classifier *expiry.Classifier
	validator  validators.Validator
	now        func() time.Time

	logger *logger.Logger
}

// NewGuestItemService constructs an [ItemSource] over the guest list.
func NewGuestItemService(repository *store.GuestItemRepository, classifier *expiry.Classifier, logger *logger.Logger) ItemSource {
	return &guestItemService{
		repository: repository,
		classifier: classifier,
		validator:  validators.NewItemValidator(nil),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *guestItemService) ListActive(ctx context.Context) ([]models.ClassifiedItem, error) {
	return s.list(ctx, false)
}

func (s *guestItemService) ListArchived(ctx context.Context) ([]models.ClassifiedItem, error) {
	return s.list(ctx, true)
}

func (s *guestItemService) list(ctx context.Context, archived bool) ([]models.ClassifiedItem, error) {
	s.mu.Lock()
	items := s.load(ctx)
	s.mu.Unlock()

	selected := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.IsArchived() == archived {
			selected = append(selected, item)
		}
	}

	classified := make([]models.ClassifiedItem, 0, len(selected))
	for _, result := range s.classifier.ClassifyEach(selected) {
		if result.Err != nil {
			s.logger.Warn().Err(result.Err).Msg("skipping guest item")
			continue
		}
		classified = append(classified, result.Item)
	}
	return expiry.Sort(classified), nil
}

func (s *guestItemService) Create(ctx context.Context, input models.ItemInput) (models.ClassifiedItem, error) {
	input, err := s.clean(ctx, input)
	if err != nil {
		return models.ClassifiedItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	now := s.now().UTC()
	item := models.Item{
		ID:         nextGuestID(items),
		Name:       input.Name,
		ExpiryDate: input.ExpiryDate,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.repository.Save(ctx, append(items, item)); err != nil {
		return models.ClassifiedItem{}, fmt.Errorf("error saving guest items: %w", err)
	}
	return s.classifier.Classify(item)
}

func (s *guestItemService) Update(ctx context.Context, itemID int64, input models.ItemInput) (models.ClassifiedItem, error) {
	input, err := s.clean(ctx, input)
	if err != nil {
		return models.ClassifiedItem{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	idx := slices.IndexFunc(items, func(item models.Item) bool { return item.ID == itemID })
	if idx < 0 {
		return models.ClassifiedItem{}, ErrItemNotFound
	}

	items[idx].Name = input.Name
	items[idx].ExpiryDate = input.ExpiryDate
	items[idx].UpdatedAt = s.now().UTC()

	if err = s.repository.Save(ctx, items); err != nil {
		return models.ClassifiedItem{}, fmt.Errorf("error saving guest items: %w", err)
	}
	return s.classifier.Classify(items[idx])
}

func (s *guestItemService) Archive(ctx context.Context, itemID int64) error {
	n, err := s.mutate(ctx, func(item *models.Item, now time.Time) bool {
		if item.ID != itemID || item.IsArchived() {
			return false
		}
		item.ArchivedAt = &now
		item.UpdatedAt = now
		return true
	})
	if err == nil && n == 0 {
		return ErrItemNotFound
	}
	return err
}

func (s *guestItemService) ArchiveAll(ctx context.Context) (int64, error) {
	return s.mutate(ctx, func(item *models.Item, now time.Time) bool {
		if item.IsArchived() {
			return false
		}
		item.ArchivedAt = &now
		item.UpdatedAt = now
		return true
	})
}

func (s *guestItemService) Delete(ctx context.Context, itemID int64) error {
	n, err := s.remove(ctx, func(item models.Item) bool { return item.ID == itemID })
	if err == nil && n == 0 {
		return ErrItemNotFound
	}
	return err
}

func (s *guestItemService) DeleteAllArchived(ctx context.Context) (int64, error) {
	return s.remove(ctx, models.Item.IsArchived)
}

// mutate applies change to every item and saves the list if anything
// changed. It returns the number of changed items.
func (s *guestItemService) mutate(ctx context.Context, change func(item *models.Item, now time.Time) bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	now := s.now().UTC()

	var changed int64
	for i := range items {
		if change(&items[i], now) {
			changed++
		}
	}
	if changed == 0 {
		return 0, nil
	}

	if err := s.repository.Save(ctx, items); err != nil {
		return 0, fmt.Errorf("error saving guest items: %w", err)
	}
	return changed, nil
}

func (s *guestItemService) remove(ctx context.Context, match func(models.Item) bool) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	kept := slices.DeleteFunc(slices.Clone(items), match)
	removed := int64(len(items) - len(kept))
	if removed == 0 {
		return 0, nil
	}

	if err := s.repository.Save(ctx, kept); err != nil {
		return 0, fmt.Errorf("error saving guest items: %w", err)
	}
	return removed, nil
}

// load reads the guest list, logging and dropping invalid elements.
func (s *guestItemService) load(ctx context.Context) []models.Item {
	items, errs := s.repository.Load(ctx)
	for _, err := range errs {
		s.logger.Warn().Err(err).Msg("ignoring invalid guest item")
	}
	return items
}

func (s *guestItemService) clean(ctx context.Context, input models.ItemInput) (models.ItemInput, error) {
	input.Name = validators.SanitizeName(input.Name)
	if err := s.validator.Validate(ctx, input); err != nil {
		return models.ItemInput{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return input, nil
}

func nextGuestID(items []models.Item) int64 {
	var maxID int64
	for _, item := range items {
		maxID = max(maxID, item.ID)
	}
	return maxID + 1
}
