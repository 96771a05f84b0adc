package tui

import (
	"context"

	"github.com/MKhiriev/nudge/internal/expiry"
	"github.com/MKhiriev/nudge/internal/logger"
	"github.com/MKhiriev/nudge/internal/service"
	"github.com/MKhiriev/nudge/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the auth flow and the list screen of the client.
type TUI struct {
	auth      service.ClientAuthService
	session   *expiry.FilterSession
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New constructs a TUI. The filter session is shared by every main loop
// run, so a sign-out keeps the buckets the user picked.
func New(auth service.ClientAuthService, session *expiry.FilterSession, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		auth:      auth,
		session:   session,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// LoginFlow shows the auth pages until the user signs in, registers or
// picks guest mode. It reports whether guest mode was chosen.
func (t *TUI) LoginFlow(ctx context.Context) (guest bool, err error) {
	pages := map[string]tea.Model{
		"menu":     NewMenuModel(ctx, t.auth),
		"login":    NewLoginModel(ctx, t.auth),
		"register": NewRegisterModel(ctx, t.auth),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return false, ErrUserQuit
	}

	t.logger.Info().Bool("guest", result.result.Guest).Msg("auth flow finished")
	return result.result.Guest, nil
}

// MainLoop runs the list screen over source until the user quits. It
// reports whether the user asked to sign out.
func (t *TUI) MainLoop(ctx context.Context, source service.ItemSource, guest bool) (logout bool, err error) {
	model := newMainLoopModel(ctx, source, t.session, guest, t.logger)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
