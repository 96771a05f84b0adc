// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// DateLayout is the calendar-date format used for expiry dates on the wire
// and in local storage.
const DateLayout = "2006-01-02"

// Item is a tracked thing with an expiry date (passport, membership,
// groceries, subscription).
//
// Status is never stored on an Item; it is derived at read time by the
// classifier and carried by [ClassifiedItem].
type Item struct {
	// ID is the unique identifier assigned by the store.
	ID int64 `json:"id"`

	// Name is the user-supplied label. Encrypted at rest on the server.
	Name string `json:"name"`

	// ExpiryDate is the calendar date (YYYY-MM-DD) when the item lapses.
	ExpiryDate string `json:"expiry_date"`

	// OwnerID references the owning user. Nil for guest items.
	OwnerID *int64 `json:"user_id"`

	// ArchivedAt is set once the item has been moved to the archive.
	ArchivedAt *time.Time `json:"archived_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// IsArchived reports whether the item belongs to the archive view.
func (i Item) IsArchived() bool {
	return i.ArchivedAt != nil
}

// ClassifiedItem is an [Item] with its computed urgency.
type ClassifiedItem struct {
	Item

	// Status is the urgency bucket derived from DaysUntilExpiry.
	Status Status `json:"status"`

	// DaysUntilExpiry is the signed number of whole days from today to the
	// expiry date. Negative values mean the item has already expired.
	DaysUntilExpiry int `json:"days_until_expiry"`
}

// ItemInput carries the user-editable fields of an item.
type ItemInput struct {
	Name       string `json:"name"`
	ExpiryDate string `json:"expiry_date"`
}

// CountResponse is returned by bulk operations.
type CountResponse struct {
	Count int64 `json:"count"`
}
