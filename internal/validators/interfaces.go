// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user input before it reaches the item and
// auth services.
//
// Item names are sanitised with a strict bluemonday policy before the
// length check. Expiry dates must be calendar dates in YYYY-MM-DD form.
package validators

import "context"

// Validator checks models.ItemInput, models.Item or models.User values.
// When fields are given, only those fields (see the Field* constants) are
// validated.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
