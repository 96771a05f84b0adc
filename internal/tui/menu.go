package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/nudge/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuEntry struct {
	label string
	page  string
}

// MenuModel is the start page of the auth flow.
type MenuModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	items  []menuEntry
	idx    int
	errMsg string
}

const pageGuest = "guest"

func NewMenuModel(ctx context.Context, auth service.ClientAuthService) *MenuModel {
	return &MenuModel{
		ctx:  ctx,
		auth: auth,
		items: []menuEntry{
			{label: "Sign in", page: "login"},
			{label: "Create account", page: "register"},
			{label: "Continue as guest", page: pageGuest},
		},
	}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.errMsg = humanizeError(result.Err)
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.idx > 0 {
			m.idx--
		}
	case "down", "j":
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case "enter":
		entry := m.items[m.idx]
		if entry.page == pageGuest {
			return m, m.cmdGuest()
		}
		return m, func() tea.Msg { return NavigateTo{Page: entry.page} }
	}

	return m, nil
}

func (m *MenuModel) cmdGuest() tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	return func() tea.Msg {
		return AuthResult{Err: auth.EnterGuestMode(ctx), Guest: true}
	}
}

func (m *MenuModel) View() string {
	var b strings.Builder

	width := 0
	for _, item := range m.items {
		if w := lipgloss.Width(item.label); w > width {
			width = w
		}
	}

	for i, item := range m.items {
		cursor := " "
		line := fmt.Sprintf("%s %d  %-*s", cursor, i+1, width, item.label)
		if i == m.idx {
			line = selectedStyle.Render(fmt.Sprintf("> %d  %-*s", i+1, width, item.label))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("NUDGE", strings.TrimRight(b.String(), "\n"), "enter: select │ ↑/↓: move │ i: version")
}
