// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vault-sync/internal/logger"
)

type refreshTokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRefreshTokenRepository constructs a [RefreshTokenRepository].
func NewRefreshTokenRepository(db *DB, logger *logger.Logger) RefreshTokenRepository {
	logger.Debug().Msg("creating refresh token repository")
	return &refreshTokenRepository{
		db:     db,
		logger: logger,
	}
}

func (r *refreshTokenRepository) SaveRefreshToken(ctx context.Context, userID int64, tokenHash string, expiresAt time.Time) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, saveRefreshToken, tokenHash, userID, expiresAt); err != nil {
		log.Err(err).Str("func", "*refreshTokenRepository.SaveRefreshToken").Int64("user_id", userID).Msg("error saving refresh token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// ConsumeRefreshToken deletes the token, so every refresh token works once.
func (r *refreshTokenRepository) ConsumeRefreshToken(ctx context.Context, tokenHash string, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	var (
		userID    int64
		expiresAt time.Time
	)
	err := r.db.QueryRowContext(ctx, consumeRefreshToken, tokenHash).Scan(&userID, &expiresAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return 0, ErrRefreshTokenNotFound
	case err != nil:
		log.Err(err).Str("func", "*refreshTokenRepository.ConsumeRefreshToken").Msg("error consuming refresh token")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if !now.Before(expiresAt) {
		return 0, ErrRefreshTokenNotFound
	}
	return userID, nil
}
