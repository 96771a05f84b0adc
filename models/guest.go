package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrInvalidGuestItem is wrapped by every per-element error returned from
// [ParseGuestItems].
var ErrInvalidGuestItem = errors.New("invalid guest item")

// GuestItemError describes why one element of the stored guest list was
// rejected.
type GuestItemError struct {
	Index  int
	Field  string
	Reason string
}

func (e *GuestItemError) Error() string {
	return fmt.Sprintf("%s at index %d: field %q %s", ErrInvalidGuestItem, e.Index, e.Field, e.Reason)
}

func (e *GuestItemError) Unwrap() error {
	return ErrInvalidGuestItem
}

// ParseGuestItems decodes the locally stored guest list.
//
// Every element is checked field by field: id must be a number, name and
// expiry_date strings, user_id a number or null, archived_at a timestamp
// or null, created_at and updated_at timestamps. Valid elements are
// returned in order; each rejected element yields a [*GuestItemError].
// A payload that is not a JSON array returns a single error and no items.
func ParseGuestItems(raw []byte) ([]Item, []error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err != nil {
		return nil, []error{fmt.Errorf("%w: guest list is not a JSON array: %w", ErrInvalidGuestItem, err)}
	}

	items := make([]Item, 0, len(elements))
	var errs []error
	for i, element := range elements {
		item, err := parseGuestItem(i, element)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		items = append(items, item)
	}

	return items, errs
}

func parseGuestItem(index int, raw json.RawMessage) (Item, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return Item{}, &GuestItemError{Index: index, Field: "", Reason: "is not an object"}
	}

	var item Item
	fail := func(field, reason string) (Item, error) {
		return Item{}, &GuestItemError{Index: index, Field: field, Reason: reason}
	}

	if !decodeRequired(fields, "id", &item.ID) {
		return fail("id", "must be an integer")
	}
	if !decodeRequired(fields, "name", &item.Name) {
		return fail("name", "must be a string")
	}
	if !decodeRequired(fields, "expiry_date", &item.ExpiryDate) {
		return fail("expiry_date", "must be a string")
	}
	if _, err := time.Parse(DateLayout, item.ExpiryDate); err != nil {
		return fail("expiry_date", "must be a YYYY-MM-DD date")
	}
	if !decodeNullable(fields, "user_id", &item.OwnerID) {
		return fail("user_id", "must be an integer or null")
	}
	if !decodeNullable(fields, "archived_at", &item.ArchivedAt) {
		return fail("archived_at", "must be a timestamp or null")
	}
	if !decodeRequired(fields, "created_at", &item.CreatedAt) {
		return fail("created_at", "must be a timestamp")
	}
	if !decodeRequired(fields, "updated_at", &item.UpdatedAt) {
		return fail("updated_at", "must be a timestamp")
	}

	return item, nil
}

// decodeRequired decodes a present, non-null field into dst.
func decodeRequired(fields map[string]json.RawMessage, key string, dst any) bool {
	raw, ok := fields[key]
	if !ok || string(bytes.TrimSpace(raw)) == "null" {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// decodeNullable decodes a present field that may be null into dst.
func decodeNullable(fields map[string]json.RawMessage, key string, dst any) bool {
	raw, ok := fields[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}
