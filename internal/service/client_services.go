// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vault-sync/internal/adapter"
	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/crypto"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/store"
	"github.com/MKhiriev/vault-sync/internal/utils"
	"github.com/MKhiriev/vault-sync/models"
)

// ClientServices wires the client-side services around one local store and
// one server adapter.
type ClientServices struct {
	Device models.Device

	CryptoService ClientCryptoService
	AuthService   ClientAuthService
	VaultService  ClientVaultService
	Protocol      ClientVaultProtocol
	SyncService   ClientSyncService
	SyncJob       ClientSyncJob
}

func NewClientServices(ctx context.Context, storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	keyChain := crypto.NewKeyChainService()

	device, err := storages.DeviceRepository.GetOrCreateDevice(ctx, func() (models.Device, error) {
		return models.Device{DeviceID: utils.NewUUIDGenerator().Generate()}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error loading device identity: %w", err)
	}

	if n, err := storages.PendingLoginRepository.DeleteExpiredPendingLogins(ctx); err != nil {
		logger.Warn().Err(err).Str("func", "NewClientServices").Msg("error dropping expired pending logins")
	} else if n > 0 {
		logger.Info().Int64("count", n).Msg("dropped expired pending logins")
	}
	if cfg.Identity.DeviceID != "" {
		device.DeviceID = cfg.Identity.DeviceID
	}

	cryptoSvc := NewClientCryptoService(keyChain)
	protocol := NewClientVaultProtocol(serverAdapter, storages.VaultStore, cryptoSvc, logger)
	syncSvc := NewClientSyncService(storages.VaultStore, protocol, cryptoSvc, cfg.Workers.MergeAttempts, logger)

	return &ClientServices{
		Device:        device,
		CryptoService: cryptoSvc,
		AuthService:   NewClientAuthService(storages, serverAdapter, keyChain, cryptoSvc, logger),
		VaultService:  NewClientVaultService(storages.VaultStore, cryptoSvc, device.DeviceID, logger),
		Protocol:      protocol,
		SyncService:   syncSvc,
		SyncJob:       NewClientSyncJob(syncSvc, logger),
	}, nil
}
