// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package expiry

import (
	"context"
	"sync"

	"github.com/MKhiriev/nudge/models"
)

// PreferenceStore persists the filter preference of one client.
//
// Load reports false when nothing usable is stored. Save must not fail the
// caller; implementations swallow and log backend errors.
type PreferenceStore interface {
	Load(ctx context.Context) (models.FilterPreference, bool)
	Save(ctx context.Context, pref models.FilterPreference)
}

// SessionState is the lifecycle stage of a [FilterSession].
type SessionState int

const (
	// StateUninitialized means no non-empty list has been observed yet, or
	// the list became empty again.
	StateUninitialized SessionState = iota
	// StateRestored means a saved preference was loaded.
	StateRestored
	// StateDefaulted means no preference was saved and [DefaultFilter] was
	// applied.
	StateDefaulted
	// StateUserOverridden means the user toggled a bucket this session.
	StateUserOverridden
)

func (s SessionState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRestored:
		return "restored"
	case StateDefaulted:
		return "defaulted"
	case StateUserOverridden:
		return "user-overridden"
	}
	return "unknown"
}

// FilterSession decides which status buckets are visible for one client
// session.
//
// The default is derived only when the observed list goes from empty to
// non-empty; later changes in item count keep the mapping in effect.
// A list that empties resets the session so the next non-empty list picks
// the preference again. All methods are safe for concurrent use.
type FilterSession struct {
	mu      sync.Mutex
	store   PreferenceStore
	state   SessionState
	visible models.FilterPreference
}

// NewFilterSession returns a session that shows every bucket until the
// first non-empty list is observed.
func NewFilterSession(store PreferenceStore) *FilterSession {
	return &FilterSession{
		store:   store,
		state:   StateUninitialized,
		visible: models.ShowAll(),
	}
}

// Observe feeds the latest classified list into the session and returns the
// preference in effect afterwards.
func (s *FilterSession) Observe(ctx context.Context, items []models.ClassifiedItem) models.FilterPreference {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(items) == 0 {
		s.state = StateUninitialized
		return s.visible
	}

	if s.state != StateUninitialized {
		return s.visible
	}

	if saved, ok := s.store.Load(ctx); ok {
		s.visible = saved
		s.state = StateRestored
		return s.visible
	}

	s.visible = DefaultFilter(items)
	s.state = StateDefaulted
	return s.visible
}

// Toggle flips one bucket, persists the full mapping and returns it.
// Before a non-empty list has been observed the saved preference is not
// loaded yet, so Toggle changes nothing and saves nothing.
func (s *FilterSession) Toggle(ctx context.Context, status models.Status) models.FilterPreference {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateUninitialized {
		return s.visible
	}

	s.visible = s.visible.Toggle(status)
	s.state = StateUserOverridden
	s.store.Save(ctx, s.visible)
	return s.visible
}

// Visible returns the preference in effect.
func (s *FilterSession) Visible() models.FilterPreference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// State returns the lifecycle stage of the session.
func (s *FilterSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Apply observes items and returns them sorted and filtered by the
// preference in effect.
func (s *FilterSession) Apply(ctx context.Context, items []models.ClassifiedItem) []models.ClassifiedItem {
	pref := s.Observe(ctx, items)
	return Organize(items, pref)
}
