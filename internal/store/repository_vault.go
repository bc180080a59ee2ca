// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/models"
	"github.com/sethvargo/go-retry"
)

// vaultRepository is the PostgreSQL-backed implementation of
// [VaultRepository].
//
// The revision column is a per-user counter. SaveVault advances it with a
// compare-and-swap inside a transaction and appends the new blob to
// vault_revisions in the same transaction.
type vaultRepository struct {
	logger  *logger.Logger
	db      *DB
	now     func() time.Time
	backoff func() retry.Backoff
}

// NewVaultRepository constructs a [VaultRepository] backed by db.
func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	logger.Debug().Msg("creating vault repository")
	return &vaultRepository{
		db:     db,
		logger: logger,
		now:    time.Now,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(2, retry.NewExponential(50*time.Millisecond))
		},
	}
}

func (r *vaultRepository) GetVault(ctx context.Context, userID int64) (models.StoredVault, error) {
	log := logger.FromContext(ctx)

	var v models.StoredVault
	err := r.db.QueryRowContext(ctx, getVault, userID).Scan(
		&v.UserID, &v.Revision, &v.Blob, &v.FormatVersion, &v.CredentialsCount, &v.CreatedAt, &v.UpdatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.StoredVault{}, ErrVaultNotFound
	case err != nil:
		log.Err(err).Str("func", "*vaultRepository.GetVault").Int64("user_id", userID).Msg("error getting vault")
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return v, nil
}

func (r *vaultRepository) GetVaultStatus(ctx context.Context, userID int64) (models.StoredVault, error) {
	log := logger.FromContext(ctx)

	var v models.StoredVault
	err := r.db.QueryRowContext(ctx, getVaultStatus, userID).Scan(
		&v.UserID, &v.Revision, &v.FormatVersion, &v.CredentialsCount, &v.CreatedAt, &v.UpdatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.StoredVault{}, ErrVaultNotFound
	case err != nil:
		log.Err(err).Str("func", "*vaultRepository.GetVaultStatus").Int64("user_id", userID).Msg("error getting vault status")
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return v, nil
}

func (r *vaultRepository) GetVaultRevision(ctx context.Context, userID, revision int64) (models.StoredVault, error) {
	log := logger.FromContext(ctx)

	var v models.StoredVault
	err := r.db.QueryRowContext(ctx, getVaultRevision, userID, revision).Scan(
		&v.UserID, &v.Revision, &v.Blob, &v.FormatVersion, &v.CreatedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.StoredVault{}, ErrVaultNotFound
	case err != nil:
		log.Err(err).Str("func", "*vaultRepository.GetVaultRevision").Int64("user_id", userID).Int64("revision", revision).Msg("error getting vault revision")
		return models.StoredVault{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	v.UpdatedAt = v.CreatedAt
	return v, nil
}

// SaveVault stores vault as revision priorRevision+1. Transient database
// errors are retried; a stale prior revision is not.
func (r *vaultRepository) SaveVault(ctx context.Context, priorRevision int64, vault models.StoredVault) (int64, error) {
	log := logger.FromContext(ctx)

	var newRevision int64
	err := retry.Do(ctx, r.backoff(), func(ctx context.Context) error {
		rev, err := r.saveOnce(ctx, priorRevision, vault)
		if err != nil {
			if r.db.Retryable(err) {
				log.Warn().Err(err).Str("func", "*vaultRepository.SaveVault").Msg("retrying vault save")
				return retry.RetryableError(err)
			}
			return err
		}
		newRevision = rev
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrStaleRevision) {
			log.Err(err).Str("func", "*vaultRepository.SaveVault").Int64("user_id", vault.UserID).Msg("error saving vault")
		}
		return 0, err
	}

	return newRevision, nil
}

func (r *vaultRepository) saveOnce(ctx context.Context, priorRevision int64, vault models.StoredVault) (int64, error) {
	now := r.now().UTC()

	var newRevision int64
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		var (
			query string
			args  []any
			err   error
		)
		if priorRevision == 0 {
			query, args, err = r.db.builder().
				Insert("vaults").
				Columns("user_id", "revision", "blob", "format_version", "credentials_count", "created_at", "updated_at").
				Values(vault.UserID, 1, vault.Blob, vault.FormatVersion, vault.CredentialsCount, now, now).
				Suffix("ON CONFLICT (user_id) DO NOTHING RETURNING revision").
				ToSql()
		} else {
			query, args, err = r.db.builder().
				Update("vaults").
				Set("revision", sq.Expr("revision + 1")).
				Set("blob", vault.Blob).
				Set("format_version", vault.FormatVersion).
				Set("credentials_count", vault.CredentialsCount).
				Set("updated_at", now).
				Where(sq.Eq{"user_id": vault.UserID}).
				Where(sq.Eq{"revision": priorRevision}).
				Suffix("RETURNING revision").
				ToSql()
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		err = tx.QueryRowContext(ctx, query, args...).Scan(&newRevision)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrStaleRevision
		case err != nil:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		query, args, err = r.db.builder().
			Insert("vault_revisions").
			Columns("user_id", "revision", "blob", "format_version", "created_at").
			Values(vault.UserID, newRevision, vault.Blob, vault.FormatVersion, now).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})

	return newRevision, err
}
