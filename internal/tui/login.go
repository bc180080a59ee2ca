// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/vault-sync/internal/service"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the Bubble Tea model for the online login and the offline
// unlock screens. Both render a username and a password input and dispatch
// an async command on submission. A successful [LoginResult] is handled by
// [RootModel]; a result asking for a second factor moves to the two-factor
// page.
type LoginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	// offline unlocks the local vault without contacting the server.
	offline bool

	form       inputForm
	submitting bool
	errMsg     string
}

// NewLoginModel creates the online login page.
func NewLoginModel(ctx context.Context, auth service.ClientAuthService, username string) *LoginModel {
	return newLoginModel(ctx, auth, username, false)
}

// NewUnlockModel creates the offline unlock page.
func NewUnlockModel(ctx context.Context, auth service.ClientAuthService, username string) *LoginModel {
	return newLoginModel(ctx, auth, username, true)
}

func newLoginModel(ctx context.Context, auth service.ClientAuthService, username string, offline bool) *LoginModel {
	m := &LoginModel{
		ctx:     ctx,
		auth:    auth,
		offline: offline,
		form: newInputForm(
			inputSpec{label: "Username", placeholder: "username", value: username, charLimit: 64},
			inputSpec{label: "Password", placeholder: "master password", secret: true, charLimit: 256},
		),
	}
	if username != "" {
		m.form.focusNext()
	}
	return m
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears submitting state, shows the error or moves to
//     the two-factor page.
//   - esc            navigates back to the menu.
//   - enter          validates inputs and dispatches the async command.
//
// All other messages go to the form.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		m.form.reset(1)
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}
		if result.TwoFactor {
			m.errMsg = ""
			prompt := TwoFactorPrompt{Username: result.Username, RequestID: result.RequestID}
			return m, func() tea.Msg { return NavigateTo{Page: "twofactor", Payload: prompt} }
		}
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: "menu"} }
		case "enter":
			if m.submitting {
				return m, nil
			}

			username := m.form.trimmed(0)
			password := m.form.value(1)
			if username == "" || password == "" {
				m.errMsg = "Username and password are required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSubmit(username, password)
		}
	}

	cmd, _ := m.form.update(msg)
	return m, cmd
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	action := "Log in"
	title := "LOG IN"
	if m.offline {
		action = "Unlock"
		title = "UNLOCK OFFLINE"
	}
	if m.submitting {
		b.WriteString("\n[" + action + "...]\n")
	} else {
		b.WriteString("\n[" + action + "]\n")
	}
	renderMessages(&b, "", m.errMsg)

	return renderPage(title, strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *LoginModel) cmdSubmit(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	offline := m.offline

	return func() tea.Msg {
		if offline {
			err := auth.Unlock(ctx, username, password)
			return LoginResult{Err: err, Username: username}
		}

		twoFactor, err := auth.Login(ctx, username, password)
		result := LoginResult{Err: err, Username: username, TwoFactor: twoFactor}
		if err == nil && twoFactor {
			result.RequestID = auth.PendingRequestID()
		}
		return result
	}
}
