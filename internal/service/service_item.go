// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/nudge/internal/crypto"
	"github.com/MKhiriev/nudge/internal/expiry"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/models"
)

// itemService classifies and organises the items stored in an
// [store.ItemRepository]. Names are encrypted before they reach the
// repository and decrypted on the way out.
type itemService struct {
	repository store.ItemRepository
	classifier *expiry.Classifier
	cipher     crypto.FieldCipher

	logger *logger.Logger
}

// NewItemService constructs an ItemService. cipher may be nil, in which
// case names are stored as they are.
func NewItemService(repository store.ItemRepository, classifier *expiry.Classifier, cipher crypto.FieldCipher, logger *logger.Logger) ItemService {
	return &itemService{
		repository: repository,
		classifier: classifier,
		cipher:     cipher,
		logger:     logger,
	}
}

func (s *itemService) ListActive(ctx context.Context, userID int64, filter *models.FilterPreference) ([]models.ClassifiedItem, error) {
	items, err := s.repository.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing active items: %w", err)
	}

	classified := expiry.Sort(s.classify(ctx, items))
	if filter != nil {
		classified = expiry.Filter(classified, *filter)
	}
	return classified, nil
}

func (s *itemService) ListArchived(ctx context.Context, userID int64) ([]models.ClassifiedItem, error) {
	items, err := s.repository.ListArchived(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing archived items: %w", err)
	}

	return expiry.Sort(s.classify(ctx, items)), nil
}

func (s *itemService) Create(ctx context.Context, userID int64, input models.ItemInput) (models.ClassifiedItem, error) {
	name, err := s.encrypt(input.Name)
	if err != nil {
		return models.ClassifiedItem{}, err
	}

	created, err := s.repository.Create(ctx, models.Item{
		Name:       name,
		ExpiryDate: input.ExpiryDate,
		OwnerID:    &userID,
	})
	if err != nil {
		return models.ClassifiedItem{}, fmt.Errorf("error creating item: %w", err)
	}

	return s.classifyOne(created)
}

func (s *itemService) Update(ctx context.Context, userID, itemID int64, input models.ItemInput) (models.ClassifiedItem, error) {
	name, err := s.encrypt(input.Name)
	if err != nil {
		return models.ClassifiedItem{}, err
	}

	updated, err := s.repository.Update(ctx, models.Item{
		ID:         itemID,
		Name:       name,
		ExpiryDate: input.ExpiryDate,
		OwnerID:    &userID,
	})
	if err != nil {
		return models.ClassifiedItem{}, mapNotFound(err, "error updating item")
	}

	return s.classifyOne(updated)
}

func (s *itemService) Archive(ctx context.Context, userID, itemID int64) error {
	if err := s.repository.Archive(ctx, userID, itemID); err != nil {
		return mapNotFound(err, "error archiving item")
	}
	return nil
}

func (s *itemService) ArchiveAll(ctx context.Context, userID int64) (int64, error) {
	n, err := s.repository.ArchiveAll(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("error archiving items: %w", err)
	}
	return n, nil
}

func (s *itemService) Delete(ctx context.Context, userID, itemID int64) error {
	if err := s.repository.Delete(ctx, userID, itemID); err != nil {
		return mapNotFound(err, "error deleting item")
	}
	return nil
}

func (s *itemService) DeleteAllArchived(ctx context.Context, userID int64) (int64, error) {
	n, err := s.repository.DeleteAllArchived(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("error deleting archived items: %w", err)
	}
	return n, nil
}

// classify decrypts and classifies items. Items whose name or date cannot
// be read are left out and logged.
func (s *itemService) classify(ctx context.Context, items []models.Item) []models.ClassifiedItem {
	log := logger.FromContext(ctx)

	readable := make([]models.Item, 0, len(items))
	for _, item := range items {
		name, err := s.decrypt(item.Name)
		if err != nil {
			log.Err(err).Int64("item_id", item.ID).Msg("skipping item with unreadable name")
			continue
		}
		item.Name = name
		readable = append(readable, item)
	}

	classified := make([]models.ClassifiedItem, 0, len(readable))
	for i, result := range s.classifier.ClassifyEach(readable) {
		if result.Err != nil {
			log.Err(result.Err).Int64("item_id", readable[i].ID).Msg("skipping item with malformed expiry date")
			continue
		}
		classified = append(classified, result.Item)
	}
	return classified
}

func (s *itemService) classifyOne(item models.Item) (models.ClassifiedItem, error) {
	name, err := s.decrypt(item.Name)
	if err != nil {
		return models.ClassifiedItem{}, err
	}
	item.Name = name

	classified, err := s.classifier.Classify(item)
	if err != nil {
		return models.ClassifiedItem{}, fmt.Errorf("%w: %w", ErrCorruptItemData, err)
	}
	return classified, nil
}

func (s *itemService) encrypt(name string) (string, error) {
	if s.cipher == nil {
		return name, nil
	}

	encrypted, err := s.cipher.Encrypt(name)
	if err != nil {
		return "", fmt.Errorf("error encrypting item name: %w", err)
	}
	return encrypted, nil
}

func (s *itemService) decrypt(stored string) (string, error) {
	if s.cipher == nil {
		return stored, nil
	}

	name, err := s.cipher.Decrypt(stored)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptItemData, err)
	}
	return name, nil
}

func mapNotFound(err error, msg string) error {
	if errors.Is(err, store.ErrItemNotFound) {
		return ErrItemNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
