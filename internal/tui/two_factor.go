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

// TwoFactorModel asks for the one-time code of a login. Opened without a
// request id it resumes a login interrupted by a restart, which needs the
// master password again since the vault key is never stored.
type TwoFactorModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	username  string
	requestID string
	resume    bool

	form       inputForm
	submitting bool
	errMsg     string
}

func NewTwoFactorModel(ctx context.Context, auth service.ClientAuthService) *TwoFactorModel {
	m := &TwoFactorModel{ctx: ctx, auth: auth}
	m.open(TwoFactorPrompt{})
	return m
}

func (m *TwoFactorModel) open(prompt TwoFactorPrompt) {
	m.username = prompt.Username
	m.requestID = prompt.RequestID
	m.resume = prompt.RequestID == ""
	m.submitting = false
	m.errMsg = ""

	code := inputSpec{label: "Code", placeholder: "123456", charLimit: 8}
	if m.resume {
		m.form = newInputForm(
			inputSpec{label: "Request ID", placeholder: "request id", charLimit: 64},
			inputSpec{label: "Master password", placeholder: "password", secret: true},
			code,
		)
	} else {
		m.form = newInputForm(code)
	}
}

func (m *TwoFactorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *TwoFactorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TwoFactorPrompt:
		m.open(msg)
		return m, textinput.Blink
	case LoginResult:
		m.submitting = false
		m.errMsg = humanizeError(msg.Err)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			ctx, auth := m.ctx, m.auth
			return m, func() tea.Msg {
				_ = auth.CancelLogin(ctx)
				return NavigateTo{Page: "menu"}
			}
		case "enter":
			if m.submitting {
				return m, nil
			}

			code := m.form.trimmed(len(m.form.inputs) - 1)
			requestID, password := m.requestID, ""
			if m.resume {
				requestID, password = m.form.trimmed(0), m.form.value(1)
				if requestID == "" || password == "" || code == "" {
					m.errMsg = "Request ID, password and code are required"
					return m, nil
				}
			}
			if code == "" {
				m.errMsg = "Code is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdValidate(requestID, password, code)
		}
	}

	cmd, _ := m.form.update(msg)
	return m, cmd
}

func (m *TwoFactorModel) View() string {
	var b strings.Builder
	if !m.resume {
		b.WriteString("User: " + valueOrDash(m.username) + "\n")
		b.WriteString("Request ID: " + m.requestID + "\n")
		b.WriteString(helpStyle.Render("Keep the request ID to finish this login after a restart."))
		b.WriteString("\n\n")
	}
	b.WriteString(m.form.view())
	if m.submitting {
		b.WriteString("\n[Verify...]\n")
	} else {
		b.WriteString("\n[Verify]\n")
	}
	renderMessages(&b, "", m.errMsg)

	return renderPage("TWO-FACTOR LOGIN", strings.TrimRight(b.String(), "\n"), "esc: cancel login │ tab: next field │ enter: submit")
}

func (m *TwoFactorModel) cmdValidate(requestID, password, code string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth
	resume := m.resume && auth.PendingRequestID() != requestID

	return func() tea.Msg {
		if resume {
			if err := auth.ResumeLogin(ctx, requestID, password); err != nil {
				return LoginResult{Err: err}
			}
		}
		if err := auth.ValidateLogin2FA(ctx, code); err != nil {
			return LoginResult{Err: err}
		}
		return LoginResult{Username: auth.Username()}
	}
}
