// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks the merged server configuration.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch {
	case cfg.App.TokenSignKey == "":
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	case cfg.App.PasswordHashKey == "":
		return fmt.Errorf("%w: password hash key is required", ErrInvalidAppConfigs)
	case cfg.App.TokenDuration <= 0 || cfg.App.RefreshTokenDuration <= 0:
		return fmt.Errorf("%w: token durations must be positive", ErrInvalidAppConfigs)
	case cfg.App.LoginChallengeTTL <= 0:
		return fmt.Errorf("%w: login challenge ttl must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.ChallengeCleanupInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 || cfg.Workers.MergeAttempts < 1 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
