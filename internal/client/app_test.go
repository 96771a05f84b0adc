package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/nudge/internal/config"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/mock"
	"github.com/MKhiriev/nudge/internal/service"
	"github.com/MKhiriev/nudge/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type mainLoopCall struct {
	source service.ItemSource
	guest  bool
}

// fakeUI replays scripted answers.
type fakeUI struct {
	loginGuest []bool
	loginErr   error
	logouts    []bool

	loginCalls int
	loops      []mainLoopCall
}

func (f *fakeUI) LoginFlow(context.Context) (bool, error) {
	if f.loginErr != nil {
		return false, f.loginErr
	}
	guest := f.loginGuest[f.loginCalls]
	f.loginCalls++
	return guest, nil
}

func (f *fakeUI) MainLoop(_ context.Context, source service.ItemSource, guest bool) (bool, error) {
	logout := f.logouts[len(f.loops)]
	f.loops = append(f.loops, mainLoopCall{source: source, guest: guest})
	return logout, nil
}

type appFixture struct {
	auth    *mock.MockClientAuthService
	adapter *mock.MockServerAdapter
	remote  *mock.MockItemSource
	guest   *mock.MockItemSource
	svcs    *service.ClientServices
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	f := &appFixture{
		auth:    mock.NewMockClientAuthService(ctrl),
		adapter: mock.NewMockServerAdapter(ctrl),
		remote:  mock.NewMockItemSource(ctrl),
		guest:   mock.NewMockItemSource(ctrl),
	}
	f.svcs = &service.ClientServices{
		AuthService: f.auth,
		Remote:      f.remote,
		Guest:       f.guest,
		Adapter:     f.adapter,
	}
	return f
}

func TestNewApp_RequiresDependencies(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, config.Client{}, logger.Nop())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestApp_RestoredSessionSkipsLogin(t *testing.T) {
	f := newAppFixture(t)
	ui := &fakeUI{logouts: []bool{false}}

	f.auth.EXPECT().GuestMode(gomock.Any()).Return(false, nil)
	f.auth.EXPECT().RestoreSession(gomock.Any()).Return(true, nil)
	f.adapter.EXPECT().Health(gomock.Any()).Return(models.HealthReport{Status: models.HealthOK}, nil)

	app, err := NewApp(f.svcs, ui, config.Client{}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	assert.Equal(t, 0, ui.loginCalls)
	require.Len(t, ui.loops, 1)
	assert.Same(t, f.remote, ui.loops[0].source)
	assert.False(t, ui.loops[0].guest)
}

func TestApp_HealthFailureIsNotFatal(t *testing.T) {
	f := newAppFixture(t)
	ui := &fakeUI{logouts: []bool{false}}

	f.auth.EXPECT().GuestMode(gomock.Any()).Return(false, nil)
	f.auth.EXPECT().RestoreSession(gomock.Any()).Return(true, nil)
	f.adapter.EXPECT().Health(gomock.Any()).Return(models.HealthReport{}, errors.New("connection refused"))

	app, err := NewApp(f.svcs, ui, config.Client{}, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, app.Run(context.Background()))
}

func TestApp_SavedGuestMode(t *testing.T) {
	f := newAppFixture(t)
	ui := &fakeUI{logouts: []bool{false}}

	f.auth.EXPECT().GuestMode(gomock.Any()).Return(true, nil)

	app, err := NewApp(f.svcs, ui, config.Client{}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	require.Len(t, ui.loops, 1)
	assert.Same(t, f.guest, ui.loops[0].source)
	assert.True(t, ui.loops[0].guest)
}

func TestApp_ConfigGuestModeThenSignOut(t *testing.T) {
	f := newAppFixture(t)
	ui := &fakeUI{loginGuest: []bool{false}, logouts: []bool{true, false}}

	gomock.InOrder(
		f.auth.EXPECT().EnterGuestMode(gomock.Any()).Return(nil),
		f.auth.EXPECT().Logout(gomock.Any()).Return(nil),
		f.auth.EXPECT().GuestMode(gomock.Any()).Return(false, nil),
		f.auth.EXPECT().RestoreSession(gomock.Any()).Return(false, nil),
	)

	app, err := NewApp(f.svcs, ui, config.Client{GuestMode: true}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	require.Len(t, ui.loops, 2)
	assert.True(t, ui.loops[0].guest)
	assert.Equal(t, 1, ui.loginCalls)
	assert.Same(t, f.remote, ui.loops[1].source)
}

func TestApp_LoginFlowPicksGuest(t *testing.T) {
	f := newAppFixture(t)
	ui := &fakeUI{loginGuest: []bool{true}, logouts: []bool{false}}

	f.auth.EXPECT().GuestMode(gomock.Any()).Return(false, errors.New("disk error"))
	f.auth.EXPECT().RestoreSession(gomock.Any()).Return(false, nil)

	app, err := NewApp(f.svcs, ui, config.Client{}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, app.Run(context.Background()))

	assert.Same(t, f.guest, ui.loops[0].source)
}

func TestApp_Errors(t *testing.T) {
	t.Run("restore fails", func(t *testing.T) {
		f := newAppFixture(t)
		f.auth.EXPECT().GuestMode(gomock.Any()).Return(false, nil)
		f.auth.EXPECT().RestoreSession(gomock.Any()).Return(false, errors.New("boom"))

		app, err := NewApp(f.svcs, &fakeUI{}, config.Client{}, logger.Nop())
		require.NoError(t, err)
		assert.ErrorContains(t, app.Run(context.Background()), "restore session")
	})

	t.Run("user quits login", func(t *testing.T) {
		f := newAppFixture(t)
		quit := errors.New("user quit")
		f.auth.EXPECT().GuestMode(gomock.Any()).Return(false, nil)
		f.auth.EXPECT().RestoreSession(gomock.Any()).Return(false, nil)

		app, err := NewApp(f.svcs, &fakeUI{loginErr: quit}, config.Client{}, logger.Nop())
		require.NoError(t, err)
		assert.ErrorIs(t, app.Run(context.Background()), quit)
	})

	t.Run("logout fails", func(t *testing.T) {
		f := newAppFixture(t)
		f.auth.EXPECT().GuestMode(gomock.Any()).Return(true, nil)
		f.auth.EXPECT().Logout(gomock.Any()).Return(errors.New("read-only"))

		app, err := NewApp(f.svcs, &fakeUI{logouts: []bool{true}}, config.Client{}, logger.Nop())
		require.NoError(t, err)
		assert.ErrorContains(t, app.Run(context.Background()), "logout")
	})
}
