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

// MinPasswordLength is the shortest master password the register page accepts.
const MinPasswordLength = 8

// RegisterModel is the Bubble Tea model for the registration screen. It
// renders username, password and confirmation inputs and dispatches an async
// registration command on submission. On success the form is reset and the
// menu receives a [RegisterSuccessNotice].
type RegisterModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	form       inputForm
	submitting bool
	errMsg     string
}

// NewRegisterModel creates a [RegisterModel]. The username field receives
// focus immediately; the password fields use masked echo.
func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		ctx:  ctx,
		auth: auth,
		form: newRegisterForm(),
	}
}

func newRegisterForm() inputForm {
	return newInputForm(
		inputSpec{label: "Username", placeholder: "username", charLimit: 64},
		inputSpec{label: "Password", placeholder: "master password", secret: true, charLimit: 256},
		inputSpec{label: "Repeat password", placeholder: "master password", secret: true, charLimit: 256},
	)
}

// Init implements [tea.Model]. Starts the cursor-blink animation for the active input.
func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [RegisterResult] clears submitting state; on error, populates errMsg;
//     on success, resets the form and navigates to the menu.
//   - esc              navigates back to the menu.
//   - enter            validates inputs and dispatches the registration.
//
// All other messages go to the form.
func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(RegisterResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeError(result.Err)
			return m, nil
		}

		m.errMsg = ""
		m.form = newRegisterForm()
		return m, func() tea.Msg {
			return NavigateTo{
				Page:    "menu",
				Payload: RegisterSuccessNotice{Username: result.Username},
			}
		}
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
			pass := m.form.value(1)
			repeat := m.form.value(2)

			switch {
			case username == "" || pass == "" || repeat == "":
				m.errMsg = "All fields are required"
				return m, nil
			case len([]rune(pass)) < MinPasswordLength:
				m.errMsg = "Password is too short"
				return m, nil
			case pass != repeat:
				m.errMsg = "Passwords do not match"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdRegister(username, pass)
		}
	}

	cmd, _ := m.form.update(msg)
	return m, cmd
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Register...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}
	renderMessages(&b, "", m.errMsg)

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}

func (m *RegisterModel) cmdRegister(username, password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		err := auth.Register(ctx, username, password)
		return RegisterResult{Err: err, Username: username}
	}
}
