// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/vault-sync/models"

// NavigateTo switches the RootModel to Page. A non-nil Payload is delivered
// to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// LoginResult finishes a login, unlock or second-factor step.
type LoginResult struct {
	Err      error
	Username string

	// TwoFactor is set when the server asked for a one-time code.
	TwoFactor bool
	RequestID string
}

// TwoFactorPrompt opens the second-factor page. An empty RequestID asks the
// user to type the request id of an interrupted login.
type TwoFactorPrompt struct {
	Username  string
	RequestID string
}

type RegisterResult struct {
	Err      error
	Username string
}

// VaultLockedNotice is delivered to the menu when the vault was locked
// without the user asking.
type VaultLockedNotice struct {
	Reason string
}

// RegisterSuccessNotice is delivered to the menu after a registration.
type RegisterSuccessNotice struct {
	Username string
}

type itemsLoadedMsg struct {
	items []models.Item
	err   error
}

type syncDoneMsg struct {
	report models.SyncReport
	err    error
}

// refreshTickMsg reloads the list to pick up background sync results.
type refreshTickMsg struct{}

type itemSavedMsg struct {
	item   models.Item
	status string
	err    error
}

type itemDeletedMsg struct {
	restored bool
	err      error
}

type historyLoadedMsg struct {
	fieldKey string
	history  []models.FieldHistory
	err      error
}

type twoFactorEnabledMsg struct {
	resp models.EnableTwoFactorResponse
	err  error
}
