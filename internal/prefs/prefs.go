// Package prefs persists the client's status filter preference.
package prefs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/nudge/internal/expiry"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/models"
)

// Key is the storage key the preference is saved under.
const Key = "nudge.status-filters.v1"

// Store implements [expiry.PreferenceStore] over a [store.KeyValue].
type Store struct {
	kv     store.KeyValue
	logger *logger.Logger
}

var _ expiry.PreferenceStore = (*Store)(nil)

// NewStore constructs a Store on kv.
func NewStore(kv store.KeyValue, log *logger.Logger) *Store {
	return &Store{kv: kv, logger: log}
}

// Load returns the saved preference. It reports false when nothing is
// saved, when the backend fails, or when the saved value is not an object
// with exactly the three boolean keys.
func (s *Store) Load(ctx context.Context) (models.FilterPreference, bool) {
	raw, err := s.kv.Get(ctx, Key)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			s.logger.Warn().Err(err).Str("func", "Store.Load").Msg("failed to read filter preference")
		}
		return models.FilterPreference{}, false
	}

	pref, err := decode(raw)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "Store.Load").Msg("ignoring malformed filter preference")
		return models.FilterPreference{}, false
	}
	return pref, true
}

// Save writes pref, replacing any saved value. Failures are logged only.
func (s *Store) Save(ctx context.Context, pref models.FilterPreference) {
	payload, err := json.Marshal(pref)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "Store.Save").Msg("failed to encode filter preference")
		return
	}

	if err = s.kv.Set(ctx, Key, payload); err != nil {
		s.logger.Warn().Err(err).Str("func", "Store.Save").Msg("failed to save filter preference")
	}
}

var errIncompletePreference = errors.New("filter preference is missing a status")

// decode accepts an object holding the keys "safe", "approaching" and
// "critical" as booleans. Keys are matched case-sensitively.
func decode(raw []byte) (models.FilterPreference, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return models.FilterPreference{}, err
	}

	var pref models.FilterPreference
	for key, dst := range map[string]*bool{
		"safe":        &pref.Safe,
		"approaching": &pref.Approaching,
		"critical":    &pref.Critical,
	} {
		value, ok := fields[key]
		if !ok || string(bytes.TrimSpace(value)) == "null" {
			return models.FilterPreference{}, fmt.Errorf("%w: %s", errIncompletePreference, key)
		}
		if err := json.Unmarshal(value, dst); err != nil {
			return models.FilterPreference{}, fmt.Errorf("status %s: %w", key, err)
		}
	}
	return pref, nil
}
