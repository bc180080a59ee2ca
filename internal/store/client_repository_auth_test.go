// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptionParamsRepository(t *testing.T) {
	repo := NewEncryptionParamsRepository(newTestSQLite(t), logger.Nop())
	ctx := context.Background()

	_, err := repo.GetEncryptionParams(ctx, "alice")
	assert.ErrorIs(t, err, ErrEncryptionParamsNotFound)

	params := models.EncryptionParams{Salt: "c2FsdA==", EncryptionType: "argon2id", EncryptionSettings: `{"time":3}`}
	require.NoError(t, repo.SaveEncryptionParams(ctx, "alice", params))

	params.Salt = "bmV3"
	require.NoError(t, repo.SaveEncryptionParams(ctx, "alice", params))

	got, err := repo.GetEncryptionParams(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, params, got)
}

func TestPendingLoginRepository(t *testing.T) {
	db := newTestSQLite(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &pendingLoginRepository{db: db, logger: logger.Nop(), now: func() time.Time { return now }}
	ctx := context.Background()

	login := models.PendingLogin{
		RequestID: "req-1",
		Username:  "alice",
		Params:    models.EncryptionParams{Salt: "c2FsdA==", EncryptionType: "argon2id", EncryptionSettings: "{}"},
		KeyCheck:  "9f2c",
		ExpiresAt: now.Add(5 * time.Minute),
	}
	require.NoError(t, repo.SavePendingLogin(ctx, login))

	got, err := repo.GetPendingLogin(ctx, "req-1")
	require.NoError(t, err)
	assert.Equal(t, login, got)

	require.NoError(t, repo.DeletePendingLogin(ctx, "req-1"))
	_, err = repo.GetPendingLogin(ctx, "req-1")
	assert.ErrorIs(t, err, ErrPendingLoginNotFound)
}

func TestPendingLoginRepository_ExpiredEntryIsRemoved(t *testing.T) {
	db := newTestSQLite(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &pendingLoginRepository{db: db, logger: logger.Nop(), now: func() time.Time { return now }}
	ctx := context.Background()

	require.NoError(t, repo.SavePendingLogin(ctx, models.PendingLogin{
		RequestID: "req-1",
		Username:  "alice",
		KeyCheck:  "9f2c",
		ExpiresAt: now.Add(time.Minute),
	}))

	now = now.Add(2 * time.Minute)
	_, err := repo.GetPendingLogin(ctx, "req-1")
	assert.ErrorIs(t, err, ErrPendingLoginNotFound)

	var count int
	require.NoError(t, db.QueryRowContext(ctx, `SELECT COUNT(*) FROM pending_logins`).Scan(&count))
	assert.Zero(t, count)
}

func TestPendingLoginRepository_DeleteExpired(t *testing.T) {
	db := newTestSQLite(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &pendingLoginRepository{db: db, logger: logger.Nop(), now: func() time.Time { return now }}
	ctx := context.Background()

	for id, ttl := range map[string]time.Duration{"old-1": -time.Minute, "old-2": -time.Hour, "live": time.Minute} {
		require.NoError(t, repo.SavePendingLogin(ctx, models.PendingLogin{
			RequestID: id,
			Username:  "alice",
			KeyCheck:  "9f2c",
			ExpiresAt: now.Add(ttl),
		}))
	}

	removed, err := repo.DeleteExpiredPendingLogins(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = repo.GetPendingLogin(ctx, "live")
	assert.NoError(t, err)
}

// Nothing persisted for an unfinished login or for the device may hold key material.
func TestLocalSchema_NoKeyMaterialColumns(t *testing.T) {
	db := newTestSQLite(t)
	ctx := context.Background()

	columns := func(table string) []string {
		rows, err := db.QueryContext(ctx, `SELECT name FROM pragma_table_info(?)`, table)
		require.NoError(t, err)
		defer rows.Close()
		var names []string
		for rows.Next() {
			var name string
			require.NoError(t, rows.Scan(&name))
			names = append(names, name)
		}
		require.NoError(t, rows.Err())
		return names
	}

	pending := columns("pending_logins")
	assert.Contains(t, pending, "key_check")
	assert.NotContains(t, pending, "sealed_key")
	assert.Equal(t, []string{"id", "device_id"}, columns("device"))
}

func TestDeviceRepository_GetOrCreateDevice(t *testing.T) {
	repo := NewDeviceRepository(newTestSQLite(t), logger.Nop())
	ctx := context.Background()

	calls := 0
	newDevice := func() (models.Device, error) {
		calls++
		return models.Device{DeviceID: "dev-1"}, nil
	}

	first, err := repo.GetOrCreateDevice(ctx, newDevice)
	require.NoError(t, err)
	second, err := repo.GetOrCreateDevice(ctx, newDevice)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}

func TestDeviceRepository_GeneratorError(t *testing.T) {
	repo := NewDeviceRepository(newTestSQLite(t), logger.Nop())

	_, err := repo.GetOrCreateDevice(context.Background(), func() (models.Device, error) {
		return models.Device{}, errors.New("no entropy")
	})
	assert.Error(t, err)
}
