// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// nudge server handlers and middleware.
//
// Msg* constants are human-readable strings written into HTTP response
// bodies or log entries.
package app

// Response bodies.
const (
	// MsgInvalidJSON is returned when a request body cannot be decoded or
	// carries unknown fields.
	MsgInvalidJSON = "invalid JSON was passed"

	// MsgInvalidGzip is returned when a gzip-encoded body cannot be
	// decompressed.
	MsgInvalidGzip = "invalid gzip data"

	// MsgInvalidEmailPassword is returned for every failed sign-in so that
	// unknown emails cannot be told apart from wrong passwords.
	MsgInvalidEmailPassword = "invalid email/password"
)

// Log messages of the HTTP handlers.
const (
	MsgRegistrationFailed  = "user registration failed"
	MsgLoginFailed         = "user login failed"
	MsgTokenCreationFailed = "creation of token failed"

	MsgBadStatusFilter = "bad status filter"
	MsgBadItemID       = "bad item id"

	MsgListItemsFailed         = "error listing items"
	MsgListArchivedFailed      = "error listing archived items"
	MsgCreateItemFailed        = "error creating item"
	MsgUpdateItemFailed        = "error updating item"
	MsgArchiveItemFailed       = "error archiving item"
	MsgDeleteItemFailed        = "error deleting item"
	MsgArchiveAllFailed        = "error archiving items"
	MsgDeleteAllArchivedFailed = "error deleting archived items"
)
