package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nudge/internal/validators"
	"github.com/MKhiriev/nudge/models"
)

// ItemServiceWrapper decorates an [ItemService] with extra behaviour such
// as validation.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}

// ItemValidationService sanitises and validates input before passing it to
// the wrapped [ItemService].
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

// NewItemValidationService returns a wrapper validating with validator.
func NewItemValidationService(validator validators.Validator) ItemServiceWrapper {
	return &ItemValidationService{validator: validator}
}

func (v *ItemValidationService) Wrap(inner ItemService) ItemService {
	v.inner = inner
	return v
}

func (v *ItemValidationService) ListActive(ctx context.Context, userID int64, filter *models.FilterPreference) ([]models.ClassifiedItem, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	return v.inner.ListActive(ctx, userID, filter)
}

func (v *ItemValidationService) ListArchived(ctx context.Context, userID int64) ([]models.ClassifiedItem, error) {
	if err := validateUserID(userID); err != nil {
		return nil, err
	}
	return v.inner.ListArchived(ctx, userID)
}

func (v *ItemValidationService) Create(ctx context.Context, userID int64, input models.ItemInput) (models.ClassifiedItem, error) {
	if err := validateUserID(userID); err != nil {
		return models.ClassifiedItem{}, err
	}

	input, err := v.cleanInput(ctx, input)
	if err != nil {
		return models.ClassifiedItem{}, err
	}
	return v.inner.Create(ctx, userID, input)
}

func (v *ItemValidationService) Update(ctx context.Context, userID, itemID int64, input models.ItemInput) (models.ClassifiedItem, error) {
	if err := validateIDs(userID, itemID); err != nil {
		return models.ClassifiedItem{}, err
	}

	input, err := v.cleanInput(ctx, input)
	if err != nil {
		return models.ClassifiedItem{}, err
	}
	return v.inner.Update(ctx, userID, itemID, input)
}

func (v *ItemValidationService) Archive(ctx context.Context, userID, itemID int64) error {
	if err := validateIDs(userID, itemID); err != nil {
		return err
	}
	return v.inner.Archive(ctx, userID, itemID)
}

func (v *ItemValidationService) ArchiveAll(ctx context.Context, userID int64) (int64, error) {
	if err := validateUserID(userID); err != nil {
		return 0, err
	}
	return v.inner.ArchiveAll(ctx, userID)
}

func (v *ItemValidationService) Delete(ctx context.Context, userID, itemID int64) error {
	if err := validateIDs(userID, itemID); err != nil {
		return err
	}
	return v.inner.Delete(ctx, userID, itemID)
}

func (v *ItemValidationService) DeleteAllArchived(ctx context.Context, userID int64) (int64, error) {
	if err := validateUserID(userID); err != nil {
		return 0, err
	}
	return v.inner.DeleteAllArchived(ctx, userID)
}

func (v *ItemValidationService) cleanInput(ctx context.Context, input models.ItemInput) (models.ItemInput, error) {
	input.Name = validators.SanitizeName(input.Name)
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.ItemInput{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return input, nil
}

func validateUserID(userID int64) error {
	if userID <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidUserID)
	}
	return nil
}

func validateIDs(userID, itemID int64) error {
	if err := validateUserID(userID); err != nil {
		return err
	}
	if itemID <= 0 {
		return fmt.Errorf("%w: %w", ErrValidation, validators.ErrInvalidItemID)
	}
	return nil
}
