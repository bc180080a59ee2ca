// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/logger"
)

// ClientStorages groups the client-side repositories. They share one SQLite
// connection.
type ClientStorages struct {
	// VaultStore holds the encrypted vault and its sync state.
	VaultStore LocalVaultStore

	EncryptionParamsRepository EncryptionParamsRepository
	PendingLoginRepository     PendingLoginRepository
	DeviceRepository           DeviceRepository

	db *DB
}

// NewClientStorages opens the SQLite file named by cfg.DB.DSN, creating it
// if needed, and applies pending migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		VaultStore:                 NewSyncStateStore(db, logger),
		EncryptionParamsRepository: NewEncryptionParamsRepository(db, logger),
		PendingLoginRepository:     NewPendingLoginRepository(db, logger),
		DeviceRepository:           NewDeviceRepository(db, logger),
		db:                         db,
	}
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
