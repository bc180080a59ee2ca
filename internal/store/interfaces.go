// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/vault-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists server accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	SetTOTPSecret(ctx context.Context, userID int64, secret string) error
}

// ChallengeRepository persists SRP exchanges between the login round trips.
type ChallengeRepository interface {
	SaveChallenge(ctx context.Context, challenge models.AuthChallenge) error
	GetChallenge(ctx context.Context, requestID string) (models.AuthChallenge, error)
	// MarkTwoFactorPending records a correct proof that still needs a TOTP
	// code and extends the challenge to expiresAt.
	MarkTwoFactorPending(ctx context.Context, requestID string, expiresAt time.Time) error
	// ConsumeChallenge marks the challenge as used. It fails with
	// ErrChallengeNotFound if the challenge was already consumed, so a proof
	// can be accepted only once.
	ConsumeChallenge(ctx context.Context, requestID string) error
	DeleteExpiredChallenges(ctx context.Context, now time.Time) (int64, error)
}

// VaultRepository stores one encrypted vault per user plus its revision
// log.
type VaultRepository interface {
	// GetVault returns the current vault including the blob.
	GetVault(ctx context.Context, userID int64) (models.StoredVault, error)
	// GetVaultRevision returns an older revision from the revision log.
	GetVaultRevision(ctx context.Context, userID, revision int64) (models.StoredVault, error)
	// GetVaultStatus returns the current vault without the blob.
	GetVaultStatus(ctx context.Context, userID int64) (models.StoredVault, error)
	// SaveVault stores vault as the next revision if priorRevision is still
	// current and returns the new revision. It fails with ErrStaleRevision
	// otherwise.
	SaveVault(ctx context.Context, priorRevision int64, vault models.StoredVault) (int64, error)
}

// RefreshTokenRepository persists hashed refresh tokens.
type RefreshTokenRepository interface {
	SaveRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error
	// ConsumeRefreshToken deletes the token and returns its owner. Expired
	// or unknown tokens yield ErrRefreshTokenNotFound.
	ConsumeRefreshToken(ctx context.Context, tokenHash string, now time.Time) (int64, error)
}
