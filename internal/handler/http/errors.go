// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidItemID is returned when the {id} path segment is not a
	// positive integer.
	ErrInvalidItemID = errors.New("invalid item id")

	// ErrInvalidStatusFilter is returned for unknown values in the status
	// query parameter.
	ErrInvalidStatusFilter = errors.New("invalid status filter")

	// ErrRateLimited is returned once a user exceeds the request rate.
	ErrRateLimited = errors.New("too many requests")
)
