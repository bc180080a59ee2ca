// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/vault-sync/internal/adapter"
	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/models"
)

// mapAdapterError translates the adapter's transport error into the app
// error taxonomy. op names the failed call for NetworkError.
func mapAdapterError(op string, err error) error {
	if err == nil {
		return nil
	}

	msg := responseMessage(err)

	switch {
	// 5xx responses are transient from the client's side: keep local state
	// and retry on the next cycle.
	case errors.Is(err, adapter.ErrTransport),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrGatewayTimeout):
		return &app.NetworkError{Op: op, Err: err}

	case errors.Is(err, adapter.ErrNoRefreshToken):
		return &app.AuthError{Reason: app.SessionExpired, Err: err}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			return &app.AuthError{Reason: app.InvalidCredentials, Err: err}
		case app.MsgTwoFactorInvalid:
			return &app.AuthError{Reason: app.TwoFactorInvalid, Err: err}
		case app.MsgLoginExpired:
			return &app.AuthError{Reason: app.LoginExpired, Err: err}
		}
		return &app.AuthError{Reason: app.SessionExpired, Err: err}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgUsernameAlreadyExists {
			return ErrUsernameAlreadyExists
		}
		return &app.SyncConflictError{Attempts: 1, Err: err}

	case errors.Is(err, adapter.ErrUnprocessable):
		if msg == app.MsgUnsupportedVaultFormat {
			return &app.VersionIncompatibleError{Local: models.VaultFormatVersion, Supported: "rejected by server"}
		}
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgVaultNotFound {
			return ErrVaultNotFound
		}
		// the route itself is missing
		return &app.AuthError{Reason: app.ServerTooOld, Err: err}

	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

// responseMessage extracts the server's error message, if err carries one.
func responseMessage(err error) string {
	var respErr *adapter.ResponseError
	if errors.As(err, &respErr) {
		return respErr.Message
	}
	return ""
}
