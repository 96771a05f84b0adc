// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal interface of the nudge client.
//
// Two Bubble Tea programs run in sequence: the auth flow (sign in,
// register or continue as guest) and the main loop, which shows the
// expiry list sorted soonest first and filtered by the visible status
// buckets of an [expiry.FilterSession].
package tui
