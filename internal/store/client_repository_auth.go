// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/models"
)

type encryptionParamsRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewEncryptionParamsRepository constructs the local cache of key-derivation
// parameters.
func NewEncryptionParamsRepository(db *DB, logger *logger.Logger) EncryptionParamsRepository {
	return &encryptionParamsRepository{db: db, logger: logger}
}

func (r *encryptionParamsRepository) SaveEncryptionParams(ctx context.Context, username string, params models.EncryptionParams) error {
	_, err := r.db.ExecContext(ctx, localUpsertEncryptionParams,
		username,
		params.Salt,
		params.EncryptionType,
		params.EncryptionSettings,
	)
	if err != nil {
		r.logger.Err(err).Str("func", "*encryptionParamsRepository.SaveEncryptionParams").Str("username", username).Msg("error saving encryption params")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *encryptionParamsRepository) GetEncryptionParams(ctx context.Context, username string) (models.EncryptionParams, error) {
	var params models.EncryptionParams
	err := r.db.QueryRowContext(ctx, localSelectEncryptionParams, username).Scan(
		&params.Salt,
		&params.EncryptionType,
		&params.EncryptionSettings,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.EncryptionParams{}, ErrEncryptionParamsNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*encryptionParamsRepository.GetEncryptionParams").Str("username", username).Msg("error reading encryption params")
		return models.EncryptionParams{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return params, nil
}

type pendingLoginRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewPendingLoginRepository constructs the store of logins waiting for a
// second factor.
func NewPendingLoginRepository(db *DB, logger *logger.Logger) PendingLoginRepository {
	return &pendingLoginRepository{db: db, logger: logger, now: time.Now}
}

func (r *pendingLoginRepository) SavePendingLogin(ctx context.Context, login models.PendingLogin) error {
	params, err := json.Marshal(login.Params)
	if err != nil {
		return fmt.Errorf("error encoding encryption params: %w", err)
	}

	err = r.db.WithTx(ctx, func(tx *sql.Tx) error {
		// stale entries are dropped whenever a new one is written
		if _, err := tx.ExecContext(ctx, localDeleteExpiredPendingLogins, r.now().UTC().UnixMilli()); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		_, err := tx.ExecContext(ctx, localUpsertPendingLogin,
			login.RequestID,
			login.Username,
			login.KeyCheck,
			string(params),
			login.ExpiresAt.UTC().UnixMilli(),
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		r.logger.Err(err).Str("func", "*pendingLoginRepository.SavePendingLogin").Msg("error saving pending login")
	}
	return err
}

func (r *pendingLoginRepository) GetPendingLogin(ctx context.Context, requestID string) (models.PendingLogin, error) {
	var (
		login     models.PendingLogin
		params    string
		expiresAt int64
	)
	err := r.db.QueryRowContext(ctx, localSelectPendingLogin, requestID).Scan(
		&login.RequestID,
		&login.Username,
		&login.KeyCheck,
		&params,
		&expiresAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.PendingLogin{}, ErrPendingLoginNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*pendingLoginRepository.GetPendingLogin").Msg("error reading pending login")
		return models.PendingLogin{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	login.ExpiresAt = time.UnixMilli(expiresAt).UTC()

	if login.Expired(r.now()) {
		if err = r.DeletePendingLogin(ctx, requestID); err != nil {
			return models.PendingLogin{}, err
		}
		return models.PendingLogin{}, ErrPendingLoginNotFound
	}

	if err = json.Unmarshal([]byte(params), &login.Params); err != nil {
		return models.PendingLogin{}, fmt.Errorf("error decoding encryption params: %w", err)
	}
	return login, nil
}

// DeleteExpiredPendingLogins drops every entry past its TTL. The client
// calls it on start so a crash mid-login leaves nothing behind.
func (r *pendingLoginRepository) DeleteExpiredPendingLogins(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, localDeleteExpiredPendingLogins, r.now().UTC().UnixMilli())
	if err != nil {
		r.logger.Err(err).Str("func", "*pendingLoginRepository.DeleteExpiredPendingLogins").Msg("error deleting expired pending logins")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n, nil
}

func (r *pendingLoginRepository) DeletePendingLogin(ctx context.Context, requestID string) error {
	if _, err := r.db.ExecContext(ctx, localDeletePendingLogin, requestID); err != nil {
		r.logger.Err(err).Str("func", "*pendingLoginRepository.DeletePendingLogin").Msg("error deleting pending login")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

type deviceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewDeviceRepository constructs the repository of this installation's
// identity.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	return &deviceRepository{db: db, logger: logger}
}

func (r *deviceRepository) GetOrCreateDevice(ctx context.Context, newDevice func() (models.Device, error)) (models.Device, error) {
	var device models.Device
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		err := tx.QueryRowContext(ctx, localSelectDevice).Scan(&device.DeviceID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if device, err = newDevice(); err != nil {
			return fmt.Errorf("error generating device identity: %w", err)
		}
		if _, err = tx.ExecContext(ctx, localInsertDevice, device.DeviceID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		r.logger.Info().Str("func", "*deviceRepository.GetOrCreateDevice").Str("device_id", device.DeviceID).Msg("registered new device")
		return nil
	})
	if err != nil {
		r.logger.Err(err).Str("func", "*deviceRepository.GetOrCreateDevice").Msg("error loading device identity")
		return models.Device{}, err
	}
	return device, nil
}
