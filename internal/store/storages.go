// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository         UserRepository
	ChallengeRepository    ChallengeRepository
	RefreshTokenRepository RefreshTokenRepository
	VaultRepository        VaultRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending migrations and wires
// every repository to the connection.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		ChallengeRepository:    NewChallengeRepository(db, logger),
		RefreshTokenRepository: NewRefreshTokenRepository(db, logger),
		VaultRepository:        NewVaultRepository(db, logger),
		db:                     db,
	}, nil
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
