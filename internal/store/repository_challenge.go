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
	"github.com/MKhiriev/vault-sync/models"
)

type challengeRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewChallengeRepository constructs a [ChallengeRepository] backed by db.
func NewChallengeRepository(db *DB, logger *logger.Logger) ChallengeRepository {
	logger.Debug().Msg("creating challenge repository")
	return &challengeRepository{
		db:     db,
		logger: logger,
	}
}

// SaveChallenge stores a new challenge. A zero UserID is stored as NULL.
func (r *challengeRepository) SaveChallenge(ctx context.Context, ch models.AuthChallenge) error {
	log := logger.FromContext(ctx)

	userID := sql.NullInt64{Int64: ch.UserID, Valid: ch.UserID != 0}
	if _, err := r.db.ExecContext(ctx, saveChallenge, ch.RequestID, userID, ch.Username, ch.ServerSecret, ch.ServerPublic, ch.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*challengeRepository.SaveChallenge").Str("request_id", ch.RequestID).Msg("error saving challenge")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *challengeRepository) GetChallenge(ctx context.Context, requestID string) (models.AuthChallenge, error) {
	log := logger.FromContext(ctx)

	var (
		ch     models.AuthChallenge
		userID sql.NullInt64
	)
	err := r.db.QueryRowContext(ctx, getChallenge, requestID).Scan(
		&ch.RequestID,
		&userID,
		&ch.Username,
		&ch.ServerSecret,
		&ch.ServerPublic,
		&ch.TwoFactorPending,
		&ch.Consumed,
		&ch.ExpiresAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.AuthChallenge{}, ErrChallengeNotFound
	case err != nil:
		log.Err(err).Str("func", "*challengeRepository.GetChallenge").Str("request_id", requestID).Msg("error getting challenge")
		return models.AuthChallenge{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	ch.UserID = userID.Int64
	return ch, nil
}

func (r *challengeRepository) MarkTwoFactorPending(ctx context.Context, requestID string, expiresAt time.Time) error {
	return r.updateOnce(ctx, "*challengeRepository.MarkTwoFactorPending", markTwoFactorPending, requestID, expiresAt)
}

func (r *challengeRepository) ConsumeChallenge(ctx context.Context, requestID string) error {
	return r.updateOnce(ctx, "*challengeRepository.ConsumeChallenge", consumeChallenge, requestID)
}

// updateOnce runs an UPDATE guarded by consumed = FALSE and maps zero
// affected rows to ErrChallengeNotFound.
func (r *challengeRepository) updateOnce(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error updating challenge")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrChallengeNotFound
	}
	return nil
}

func (r *challengeRepository) DeleteExpiredChallenges(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, deleteExpiredChallenges, now)
	if err != nil {
		log.Err(err).Str("func", "*challengeRepository.DeleteExpiredChallenges").Msg("error deleting expired challenges")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return res.RowsAffected()
}
