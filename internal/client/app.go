package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/nudge/internal/config"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/service"
)

// App is the terminal client: it chooses the item source for the session
// and hands it to the UI.
type App struct {
	services  *service.ClientServices
	ui        UI
	guestMode bool
	logger    *logger.Logger
}

var _ Client = (*App)(nil)

// NewApp wires the client. With cfg.GuestMode set the first session runs
// in guest mode without asking.
func NewApp(services *service.ClientServices, ui UI, cfg config.Client, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrNotConfigured
	}

	return &App{
		services:  services,
		ui:        ui,
		guestMode: cfg.GuestMode,
		logger:    logger,
	}, nil
}

// Run loops over sessions until the user quits. Signing out clears the
// saved session and shows the auth flow again.
func (a *App) Run(ctx context.Context) error {
	for {
		source, guest, err := a.selectSource(ctx)
		if err != nil {
			return err
		}

		a.logger.Info().Bool("guest", guest).Msg("session started")
		logout, err := a.ui.MainLoop(ctx, source, guest)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.guestMode = false
		a.logger.Info().Msg("signed out")
	}
}

// selectSource returns the guest store when guest mode is on, the server
// when a saved session exists, and otherwise asks the user.
func (a *App) selectSource(ctx context.Context) (service.ItemSource, bool, error) {
	auth := a.services.AuthService

	if a.guestMode {
		if err := auth.EnterGuestMode(ctx); err != nil {
			return nil, false, fmt.Errorf("enter guest mode: %w", err)
		}
		return a.services.Guest, true, nil
	}

	guest, err := auth.GuestMode(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("failed to read guest mode flag")
	}
	if guest {
		return a.services.Guest, true, nil
	}

	restored, err := auth.RestoreSession(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("restore session: %w", err)
	}
	if restored {
		a.checkServer(ctx)
		return a.services.Remote, false, nil
	}

	guest, err = a.ui.LoginFlow(ctx)
	if err != nil {
		return nil, false, err
	}
	if guest {
		return a.services.Guest, true, nil
	}
	return a.services.Remote, false, nil
}

// checkServer logs whether the server answers its health probe. The UI
// reports failures itself on the first list call.
func (a *App) checkServer(ctx context.Context) {
	if a.services.Adapter == nil {
		return
	}

	report, err := a.services.Adapter.Health(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Msg("server health check failed")
		return
	}
	a.logger.Debug().
		Str("status", report.Status).
		Int64("latency_ms", report.LatencyMs).
		Msg("server is reachable")
}
