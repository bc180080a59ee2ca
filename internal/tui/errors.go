// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/service"
)

// ErrUserQuit is returned when the user leaves the program from a prompt.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns a service error into a line for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var authErr *app.AuthError
	if errors.As(err, &authErr) {
		return authErr.Error()
	}

	switch {
	case errors.Is(err, app.ErrNetwork):
		return "Network is unavailable or the server is unreachable"
	case errors.Is(err, app.ErrVersionIncompatible):
		return "This vault was written by a newer client, please update"
	case errors.Is(err, app.ErrSyncConflict):
		return "The vault kept changing on the server, try syncing again"
	case errors.Is(err, app.ErrCrypto):
		return "Wrong password or damaged vault"
	case errors.Is(err, service.ErrVaultLocked):
		return "Vault is locked"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return "Invalid data: " + err.Error()
	}
	return err.Error()
}
