// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/store"
	"github.com/MKhiriev/vault-sync/models"
)

// Services bundles the server-side services.
type Services struct {
	AuthService    AuthService
	VaultService   VaultService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	vaultService := NewVaultValidationService().Wrap(NewVaultService(storages.VaultRepository, logger))

	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			storages.ChallengeRepository,
			storages.RefreshTokenRepository,
			cfg.App,
			logger,
		),
		VaultService:   vaultService,
		AppInfoService: appInfoService,
	}, nil
}
