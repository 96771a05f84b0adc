// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/nudge/internal/service"
	"github.com/MKhiriev/nudge/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type authMode int

const (
	authModeLogin authMode = iota
	authModeRegister
)

// AuthFormModel is the sign-in and registration screen. It renders email
// and password inputs and dispatches the call asynchronously on submit;
// the outcome arrives as an [AuthResult].
type AuthFormModel struct {
	ctx  context.Context
	auth service.ClientAuthService
	mode authMode

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

// NewLoginModel returns the sign-in form.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *AuthFormModel {
	return newAuthForm(ctx, auth, authModeLogin)
}

// NewRegisterModel returns the registration form.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *AuthFormModel {
	return newAuthForm(ctx, auth, authModeRegister)
}

func newAuthForm(ctx context.Context, auth service.ClientAuthService, mode authMode) *AuthFormModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "you@example.com"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return &AuthFormModel{
		ctx:    ctx,
		auth:   auth,
		mode:   mode,
		inputs: []textinput.Model{emailInput, passwordInput},
	}
}

func (m *AuthFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - AuthResult: clears the submitting state and shows the error, if any
//   - esc: back to the menu
//   - tab / shift+tab: focus movement
//   - enter: submit
//
// Other keys go to the focused input.
func (m *AuthFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(AuthResult); ok {
		m.submitting = false
		m.errMsg = humanizeError(result.Err)
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "tab", "down":
			m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		case "enter":
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AuthFormModel) submit() (tea.Model, tea.Cmd) {
	if m.submitting {
		return m, nil
	}

	email := strings.TrimSpace(m.inputs[0].Value())
	password := m.inputs[1].Value()
	if email == "" || password == "" {
		m.errMsg = "Email and password are required"
		return m, nil
	}

	m.errMsg = ""
	m.submitting = true
	return m, m.cmdSubmit(models.User{Email: email, Password: password})
}

func (m *AuthFormModel) cmdSubmit(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	mode := m.mode

	return func() tea.Msg {
		var err error
		if mode == authModeRegister {
			err = auth.Register(ctx, user)
		} else {
			err = auth.Login(ctx, user)
		}
		return AuthResult{Err: err, Email: user.Email}
	}
}

func (m *AuthFormModel) View() string {
	title, action := "SIGN IN", "Sign in"
	if m.mode == authModeRegister {
		title, action = "CREATE ACCOUNT", "Register"
	}

	var b strings.Builder
	b.WriteString("Email    │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Password │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString("[" + action + "...]\n")
	} else {
		b.WriteString("[" + action + "]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *AuthFormModel) moveFocus(delta int) {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}
