package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/nudge/models"
)

// Storage keys of the guest (signed-out) mode.
const (
	GuestModeKey  = "nudge.guest-mode.v1"
	GuestItemsKey = "nudge.guest-items.v1"
)

// GuestItemRepository keeps the items of a signed-out user on the device.
type GuestItemRepository struct {
	kv KeyValue
}

// NewGuestItemRepository constructs a [GuestItemRepository] on kv.
func NewGuestItemRepository(kv KeyValue) *GuestItemRepository {
	return &GuestItemRepository{kv: kv}
}

// Load returns the stored guest items. Elements that fail validation are
// left out and reported in the returned error slice; an absent list is
// empty.
func (r *GuestItemRepository) Load(ctx context.Context) ([]models.Item, []error) {
	raw, err := r.kv.Get(ctx, GuestItemsKey)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, []error{fmt.Errorf("read guest items: %w", err)}
	}

	return models.ParseGuestItems(raw)
}

// Save replaces the stored guest list with items.
func (r *GuestItemRepository) Save(ctx context.Context, items []models.Item) error {
	if items == nil {
		items = []models.Item{}
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode guest items: %w", err)
	}
	return r.kv.Set(ctx, GuestItemsKey, payload)
}

// GuestMode reports whether the device was left in guest mode.
func (r *GuestItemRepository) GuestMode(ctx context.Context) (bool, error) {
	raw, err := r.kv.Get(ctx, GuestModeKey)
	if errors.Is(err, ErrKeyNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	enabled, err := strconv.ParseBool(string(raw))
	if err != nil {
		return false, nil
	}
	return enabled, nil
}

// SetGuestMode records whether the device is in guest mode.
func (r *GuestItemRepository) SetGuestMode(ctx context.Context, enabled bool) error {
	return r.kv.Set(ctx, GuestModeKey, []byte(strconv.FormatBool(enabled)))
}
