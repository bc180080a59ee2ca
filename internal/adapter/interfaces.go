// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client's transport to the vault-sync server.
//
// [ServerAdapter] hides the protocol from the service layer. The HTTP/REST
// implementation ([NewHTTPServerAdapter]) is built on resty.
//
// Non-2xx responses are returned as [*ResponseError], which matches the
// sentinels in errors.go with [errors.Is] ([ErrConflict] for 409,
// [ErrUnauthorized] for 401). Failures before a response arrives, including
// timeouts, wrap [ErrTransport].
package adapter

import (
	"context"

	"github.com/MKhiriev/vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the server.
type ServerAdapter interface {
	// SetTokens stores the access and refresh tokens used by authenticated
	// calls. An empty pair logs the adapter out.
	SetTokens(tokens models.TokenPair)

	// Token returns the current access token or an empty string.
	Token() string

	// Register creates an account. It does not log in.
	Register(ctx context.Context, req models.RegisterRequest) error

	// InitiateLogin starts the SRP exchange and returns the server challenge.
	InitiateLogin(ctx context.Context, req models.InitiateLoginRequest) (models.InitiateLoginResponse, error)

	// ValidateLogin submits the client proof. Tokens in the response are not
	// stored: the caller must verify the server proof first.
	ValidateLogin(ctx context.Context, req models.ValidateLoginRequest) (models.ValidateLoginResponse, error)

	// ValidateLogin2FA completes a login that required a one-time code.
	ValidateLogin2FA(ctx context.Context, req models.TwoFactorRequest) (models.TokenPair, error)

	// Refresh exchanges the stored refresh token for a new pair and stores it.
	Refresh(ctx context.Context) (models.TokenPair, error)

	// EnableTwoFactor turns on TOTP for the logged-in user.
	EnableTwoFactor(ctx context.Context) (models.EnableTwoFactorResponse, error)

	// GetVaultStatus returns the server revision and accepted formats.
	GetVaultStatus(ctx context.Context) (models.VaultStatusResponse, error)

	// GetVault downloads the vault at revision. Zero means the current one.
	GetVault(ctx context.Context, revision int64) (models.VaultResponse, error)

	// UploadVault stores a new revision. A stale PriorRevision fails with
	// [ErrConflict].
	UploadVault(ctx context.Context, req models.UploadVaultRequest) (models.UploadVaultResponse, error)

	// GetVersion returns the server build information.
	GetVersion(ctx context.Context) (models.VersionResponse, error)
}
