package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/nudge/internal/adapter"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/mock"
	"github.com/MKhiriev/nudge/internal/store"
	"github.com/MKhiriev/nudge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientAuth(t *testing.T) (ClientAuthService, *mock.MockServerAdapter, store.KeyValue) {
	t.Helper()

	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	kv := store.NewMemoryKeyValue()
	return NewClientAuthService(serverAdapter, kv, logger.Nop()), serverAdapter, kv
}

func TestClientAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc, serverAdapter, kv := newTestClientAuth(t)
	require.NoError(t, store.NewGuestItemRepository(kv).SetGuestMode(ctx, true))

	user := models.User{Email: "demo@example.com", Password: "demo1234"}
	gomock.InOrder(
		serverAdapter.EXPECT().Login(ctx, user).Return(models.Token{SignedString: "jwt-token"}, nil),
		serverAdapter.EXPECT().SetToken("jwt-token"),
	)

	require.NoError(t, svc.Login(ctx, user))

	saved, err := kv.Get(ctx, SessionKey)
	require.NoError(t, err)
	assert.Equal(t, "jwt-token", string(saved))

	guest, err := svc.GuestMode(ctx)
	require.NoError(t, err)
	assert.False(t, guest, "logging in leaves guest mode")
}

func TestClientAuthService_LoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc, serverAdapter, kv := newTestClientAuth(t)

	serverAdapter.EXPECT().Login(ctx, gomock.Any()).Return(models.Token{}, adapter.ErrUnauthorized)

	err := svc.Login(ctx, models.User{Email: "demo@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = kv.Get(ctx, SessionKey)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}

func TestClientAuthService_Register(t *testing.T) {
	ctx := context.Background()
	svc, serverAdapter, _ := newTestClientAuth(t)

	serverAdapter.EXPECT().Register(ctx, gomock.Any()).Return(models.Token{SignedString: "fresh"}, nil)
	serverAdapter.EXPECT().SetToken("fresh")

	require.NoError(t, svc.Register(ctx, models.User{Email: "new@example.com", Password: "password1"}))

	serverAdapter.EXPECT().SetToken("fresh")
	restored, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.True(t, restored)
}

func TestClientAuthService_RestoreAndLogout(t *testing.T) {
	ctx := context.Background()
	svc, serverAdapter, kv := newTestClientAuth(t)

	restored, err := svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.False(t, restored, "nothing saved yet")

	require.NoError(t, kv.Set(ctx, SessionKey, []byte("saved-token")))
	serverAdapter.EXPECT().SetToken("saved-token")

	restored, err = svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.True(t, restored)

	serverAdapter.EXPECT().SetToken("")
	require.NoError(t, svc.Logout(ctx))

	restored, err = svc.RestoreSession(ctx)
	require.NoError(t, err)
	assert.False(t, restored, "logout clears the saved session")
}

func TestClientAuthService_GuestMode(t *testing.T) {
	ctx := context.Background()
	svc, serverAdapter, _ := newTestClientAuth(t)

	serverAdapter.EXPECT().SetToken("")
	require.NoError(t, svc.EnterGuestMode(ctx))

	guest, err := svc.GuestMode(ctx)
	require.NoError(t, err)
	assert.True(t, guest)
}
