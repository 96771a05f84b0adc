package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/nudge/internal/adapter"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/models"
)

// SessionKey is the local storage key of the saved bearer token.
const SessionKey = "nudge.session.v1"

type clientAuthService struct {
	adapter adapter.ServerAdapter
	kv      store.KeyValue
	guest   *store.GuestItemRepository
	logger  *logger.Logger
}

// NewClientAuthService constructs a [ClientAuthService]. Tokens are kept in
// kv so the next start can skip the login screen.
func NewClientAuthService(serverAdapter adapter.ServerAdapter, kv store.KeyValue, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter: serverAdapter,
		kv:      kv,
		guest:   store.NewGuestItemRepository(kv),
		logger:  logger,
	}
}

func (s *clientAuthService) Register(ctx context.Context, user models.User) error {
	token, err := s.adapter.Register(ctx, user)
	if err != nil {
		return fmt.Errorf("error registering: %w", err)
	}
	return s.startSession(ctx, token)
}

func (s *clientAuthService) Login(ctx context.Context, user models.User) error {
	token, err := s.adapter.Login(ctx, user)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			return fmt.Errorf("%w: %w", ErrWrongPassword, err)
		}
		return fmt.Errorf("error logging in: %w", err)
	}
	return s.startSession(ctx, token)
}

// startSession saves the token and leaves guest mode. A failed save only
// costs a login on the next start.
func (s *clientAuthService) startSession(ctx context.Context, token models.Token) error {
	s.adapter.SetToken(token.String())

	if err := s.kv.Set(ctx, SessionKey, []byte(token.String())); err != nil {
		s.logger.Warn().Err(err).Msg("failed to save session")
	}
	return s.guest.SetGuestMode(ctx, false)
}

// RestoreSession loads a saved token into the adapter. It reports false
// when no session was saved.
func (s *clientAuthService) RestoreSession(ctx context.Context) (bool, error) {
	raw, err := s.kv.Get(ctx, SessionKey)
	if errors.Is(err, store.ErrKeyNotFound) || (err == nil && len(raw) == 0) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("error reading session: %w", err)
	}

	s.adapter.SetToken(string(raw))
	return true, nil
}

func (s *clientAuthService) Logout(ctx context.Context) error {
	s.adapter.SetToken("")
	if err := s.kv.Set(ctx, SessionKey, []byte{}); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}
	return s.guest.SetGuestMode(ctx, false)
}

func (s *clientAuthService) EnterGuestMode(ctx context.Context) error {
	s.adapter.SetToken("")
	return s.guest.SetGuestMode(ctx, true)
}

func (s *clientAuthService) GuestMode(ctx context.Context) (bool, error) {
	return s.guest.GuestMode(ctx)
}
