// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the account and returns it with UserID and CreatedAt
// filled in.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrLoginAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Username, user.Salt, user.EncryptionType, user.EncryptionSettings, user.Verifier)

	if err := row.Scan(&user.UserID, &user.CreatedAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("error creating user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrLoginAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return user, nil
}

// FindUserByUsername returns the account registered under username or
// [ErrNoUserWasFound].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByUsername", findUserByUsername, username)
}

// FindUserByID returns the account with the given id or [ErrNoUserWasFound].
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, userID)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.UserID,
		&user.Username,
		&user.Salt,
		&user.EncryptionType,
		&user.EncryptionSettings,
		&user.Verifier,
		&user.TOTPSecret,
		&user.CreatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", funcName).Any("key", arg).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// SetTOTPSecret stores the user's two-factor secret. An empty secret
// disables two-factor.
func (r *userRepository) SetTOTPSecret(ctx context.Context, userID int64, secret string) error {
	log := logger.FromContext(ctx)

	res, err := r.db.ExecContext(ctx, setTOTPSecret, userID, secret)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetTOTPSecret").Int64("user_id", userID).Msg("error updating totp secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNoUserWasFound
	}
	return nil
}
