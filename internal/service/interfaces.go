// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService runs the server side of registration, the SRP login exchange
// and token issuing. It never sees a password or a vault key.
type AuthService interface {
	// RegisterUser stores the username, the public key-derivation parameters
	// and the SRP verifier.
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// InitiateLogin issues a challenge. Unknown usernames receive a
	// deterministic fake salt and a random B, so the response does not
	// reveal whether the account exists.
	InitiateLogin(ctx context.Context, req models.InitiateLoginRequest) (models.InitiateLoginResponse, error)

	// ValidateLogin checks the client proof. On success it returns M2 and
	// either a token pair or RequiresTwoFactor.
	ValidateLogin(ctx context.Context, req models.ValidateLoginRequest) (models.ValidateLoginResponse, error)

	// ValidateTwoFactor completes a login that required a TOTP code.
	ValidateTwoFactor(ctx context.Context, req models.TwoFactorRequest) (models.TokenPair, error)

	// Refresh rotates a refresh token into a new token pair.
	Refresh(ctx context.Context, req models.RefreshRequest) (models.TokenPair, error)

	// EnableTwoFactor generates and stores a TOTP secret for the user.
	EnableTwoFactor(ctx context.Context, userID int64) (models.EnableTwoFactorResponse, error)

	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// DeleteExpiredChallenges removes challenges past their TTL.
	DeleteExpiredChallenges(ctx context.Context) (int64, error)
}

// VaultService stores and serves the opaque vault blob of each user.
type VaultService interface {
	GetVaultStatus(ctx context.Context, userID int64) (models.VaultStatusResponse, error)

	// GetVault returns the current vault, or an older one from the revision
	// log when revision is positive and not current.
	GetVault(ctx context.Context, userID int64, username string, revision int64) (models.VaultResponse, error)

	// UploadVault stores a new revision. It fails with ErrStaleRevision when
	// req.PriorRevision is not the current revision.
	UploadVault(ctx context.Context, userID int64, req models.UploadVaultRequest) (models.UploadVaultResponse, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	BuildInfo(ctx context.Context) models.VersionResponse
}
