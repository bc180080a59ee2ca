// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newAuthMock(t *testing.T) *mock.MockClientAuthService {
	t.Helper()
	return mock.NewMockClientAuthService(gomock.NewController(t))
}

// ── LoginModel ───────────────────────────────────────────────────────────────

func TestLoginModel_RequiresFields(t *testing.T) {
	m := NewLoginModel(context.Background(), newAuthMock(t), "")

	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Username and password are required")
}

func TestLoginModel_Success(t *testing.T) {
	auth := newAuthMock(t)
	auth.EXPECT().Login(gomock.Any(), "alice", "secret-pw").Return(false, nil)

	m := NewLoginModel(context.Background(), auth, "")
	typeText(m, "alice")
	m.Update(keyTab)
	typeText(m, "secret-pw")

	_, cmd := m.Update(keyEnter)
	assert.True(t, m.submitting)
	assert.Equal(t, LoginResult{Username: "alice"}, runCmd(t, cmd))

	// a second enter while submitting does nothing
	_, cmd = m.Update(keyEnter)
	assert.Nil(t, cmd)
}

func TestLoginModel_PrefilledUsernameFocusesPassword(t *testing.T) {
	auth := newAuthMock(t)
	auth.EXPECT().Login(gomock.Any(), "alice", "pw").Return(false, nil)

	m := NewLoginModel(context.Background(), auth, "alice")
	typeText(m, "pw")
	_, cmd := m.Update(keyEnter)
	runCmd(t, cmd)
}

func TestLoginModel_TwoFactor(t *testing.T) {
	auth := newAuthMock(t)
	auth.EXPECT().Login(gomock.Any(), "alice", "pw").Return(true, nil)
	auth.EXPECT().PendingRequestID().Return("req-1")

	m := NewLoginModel(context.Background(), auth, "alice")
	typeText(m, "pw")
	_, cmd := m.Update(keyEnter)
	result := runCmd(t, cmd)
	require.Equal(t, LoginResult{Username: "alice", TwoFactor: true, RequestID: "req-1"}, result)

	_, cmd = m.Update(result)
	assert.Equal(t, NavigateTo{Page: "twofactor", Payload: TwoFactorPrompt{Username: "alice", RequestID: "req-1"}}, runCmd(t, cmd))
	assert.Empty(t, m.form.value(1), "password is cleared")
}

func TestLoginModel_Error(t *testing.T) {
	m := NewLoginModel(context.Background(), newAuthMock(t), "alice")
	m.submitting = true

	m.Update(LoginResult{Err: &app.AuthError{Reason: app.InvalidCredentials}})
	assert.False(t, m.submitting)
	assert.Equal(t, app.MsgInvalidCredentials, m.errMsg)

	m.Update(LoginResult{Err: &app.NetworkError{}})
	assert.Contains(t, m.errMsg, "server is unreachable")
}

func TestLoginModel_EscGoesToMenu(t *testing.T) {
	m := NewLoginModel(context.Background(), newAuthMock(t), "")
	_, cmd := m.Update(keyEsc)
	assert.Equal(t, NavigateTo{Page: "menu"}, runCmd(t, cmd))
}

func TestUnlockModel_UsesOfflineUnlock(t *testing.T) {
	auth := newAuthMock(t)
	auth.EXPECT().Unlock(gomock.Any(), "alice", "pw").Return(nil)

	m := NewUnlockModel(context.Background(), auth, "alice")
	assert.Contains(t, m.View(), "UNLOCK OFFLINE")
	typeText(m, "pw")
	_, cmd := m.Update(keyEnter)
	assert.Equal(t, LoginResult{Username: "alice"}, runCmd(t, cmd))
}

// ── RegisterModel ────────────────────────────────────────────────────────────

func fillRegister(m *RegisterModel, username, pass, repeat string) {
	typeText(m, username)
	m.Update(keyTab)
	typeText(m, pass)
	m.Update(keyTab)
	typeText(m, repeat)
}

func TestRegisterModel_Validation(t *testing.T) {
	tests := []struct {
		name                   string
		username, pass, repeat string
		want                   string
	}{
		{"empty", "", "", "", "All fields are required"},
		{"short password", "bob", "short", "short", "Password is too short"},
		{"mismatch", "bob", "long-password", "other-password", "Passwords do not match"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewRegisterModel(context.Background(), newAuthMock(t))
			fillRegister(m, tt.username, tt.pass, tt.repeat)

			_, cmd := m.Update(keyEnter)
			assert.Nil(t, cmd)
			assert.Equal(t, tt.want, m.errMsg)
		})
	}
}

func TestRegisterModel_Success(t *testing.T) {
	auth := newAuthMock(t)
	auth.EXPECT().Register(gomock.Any(), "bob", "long-password").Return(nil)

	m := NewRegisterModel(context.Background(), auth)
	fillRegister(m, "bob", "long-password", "long-password")

	_, cmd := m.Update(keyEnter)
	result := runCmd(t, cmd)
	require.Equal(t, RegisterResult{Username: "bob"}, result)

	_, cmd = m.Update(result)
	assert.Equal(t, NavigateTo{Page: "menu", Payload: RegisterSuccessNotice{Username: "bob"}}, runCmd(t, cmd))
	assert.Empty(t, m.form.value(0), "form is reset")
}

func TestRegisterModel_ServerError(t *testing.T) {
	m := NewRegisterModel(context.Background(), newAuthMock(t))
	m.Update(RegisterResult{Err: assert.AnError, Username: "bob"})
	assert.Equal(t, assert.AnError.Error(), m.errMsg)
}

// ── TwoFactorModel ───────────────────────────────────────────────────────────

func TestTwoFactorModel_Validate(t *testing.T) {
	auth := newAuthMock(t)
	auth.EXPECT().ValidateLogin2FA(gomock.Any(), "123456").Return(nil)
	auth.EXPECT().Username().Return("alice")

	m := NewTwoFactorModel(context.Background(), auth)
	m.Update(TwoFactorPrompt{Username: "alice", RequestID: "req-1"})
	assert.Contains(t, m.View(), "req-1")

	typeText(m, "123456")
	_, cmd := m.Update(keyEnter)
	assert.Equal(t, LoginResult{Username: "alice"}, runCmd(t, cmd))
}

func TestTwoFactorModel_Resume(t *testing.T) {
	auth := newAuthMock(t)
	gomock.InOrder(
		auth.EXPECT().PendingRequestID().Return(""),
		auth.EXPECT().ResumeLogin(gomock.Any(), "req-9", "s3cret").Return(nil),
		auth.EXPECT().ValidateLogin2FA(gomock.Any(), "654321").Return(nil),
		auth.EXPECT().Username().Return("alice"),
	)

	m := NewTwoFactorModel(context.Background(), auth)
	m.Update(TwoFactorPrompt{})
	assert.Contains(t, m.View(), "Master password")
	typeText(m, "req-9")
	m.Update(keyTab)
	typeText(m, "s3cret")
	m.Update(keyTab)
	typeText(m, "654321")

	_, cmd := m.Update(keyEnter)
	assert.Equal(t, LoginResult{Username: "alice"}, runCmd(t, cmd))
}

func TestTwoFactorModel_ResumeExpired(t *testing.T) {
	auth := newAuthMock(t)
	expired := &app.AuthError{Reason: app.LoginExpired}
	auth.EXPECT().PendingRequestID().Return("")
	auth.EXPECT().ResumeLogin(gomock.Any(), "req-9", "s3cret").Return(expired)

	m := NewTwoFactorModel(context.Background(), auth)
	typeText(m, "req-9")
	m.Update(keyTab)
	typeText(m, "s3cret")
	m.Update(keyTab)
	typeText(m, "1")

	_, cmd := m.Update(keyEnter)
	m.Update(runCmd(t, cmd))
	assert.Equal(t, expired.Error(), m.errMsg)
	assert.False(t, m.submitting)
}

func TestTwoFactorModel_RequiresCode(t *testing.T) {
	m := NewTwoFactorModel(context.Background(), newAuthMock(t))
	m.Update(TwoFactorPrompt{Username: "alice", RequestID: "req-1"})

	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.NotEmpty(t, m.errMsg)
}

func TestTwoFactorModel_ResumeRequiresPassword(t *testing.T) {
	m := NewTwoFactorModel(context.Background(), newAuthMock(t))
	typeText(m, "req-9")
	m.Update(keyTab)
	m.Update(keyTab)
	typeText(m, "654321")

	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
	assert.Equal(t, "Request ID, password and code are required", m.errMsg)
	assert.False(t, m.submitting)
}

func TestTwoFactorModel_EscCancelsLogin(t *testing.T) {
	auth := newAuthMock(t)
	auth.EXPECT().CancelLogin(gomock.Any()).Return(nil)

	m := NewTwoFactorModel(context.Background(), auth)
	m.Update(TwoFactorPrompt{Username: "alice", RequestID: "req-1"})

	_, cmd := m.Update(keyEsc)
	assert.Equal(t, NavigateTo{Page: "menu"}, runCmd(t, cmd))
}
