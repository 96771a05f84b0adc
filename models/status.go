// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Status is the urgency bucket an item falls into relative to today.
type Status string

const (
	// StatusSafe marks items expiring in more than 30 days.
	StatusSafe Status = "safe"
	// StatusApproaching marks items expiring in 8 to 30 days.
	StatusApproaching Status = "approaching"
	// StatusCritical marks items expiring in 7 days or less, including
	// items that expire today or have already expired.
	StatusCritical Status = "critical"
)

// Statuses lists every status in display order (most urgent first).
var Statuses = []Status{StatusCritical, StatusApproaching, StatusSafe}

// ParseStatus converts s into a [Status], rejecting unknown values.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusSafe, StatusApproaching, StatusCritical:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown status %q", s)
}

// String implements [fmt.Stringer].
func (s Status) String() string {
	return string(s)
}

// UnmarshalJSON rejects statuses other than safe, approaching and critical.
func (s *Status) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	parsed, err := ParseStatus(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
