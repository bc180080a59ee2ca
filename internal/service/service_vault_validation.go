// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/validators"
	"github.com/MKhiriev/vault-sync/models"
)

// VaultServiceWrapper decorates a VaultService, e.g. with validation.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService
}

// VaultValidationService rejects malformed uploads before they reach the
// wrapped VaultService.
type VaultValidationService struct {
	inner     VaultService
	validator validators.Validator
}

func NewVaultValidationService() VaultServiceWrapper {
	return &VaultValidationService{
		validator: validators.NewVaultValidator(MinClientFormat, MaxClientFormat),
	}
}

func (v *VaultValidationService) GetVaultStatus(ctx context.Context, userID int64) (models.VaultStatusResponse, error) {
	if userID <= 0 {
		return models.VaultStatusResponse{}, ErrInvalidDataProvided
	}
	return v.inner.GetVaultStatus(ctx, userID)
}

func (v *VaultValidationService) GetVault(ctx context.Context, userID int64, username string, revision int64) (models.VaultResponse, error) {
	if userID <= 0 || revision < 0 {
		return models.VaultResponse{}, ErrInvalidDataProvided
	}
	return v.inner.GetVault(ctx, userID, username, revision)
}

func (v *VaultValidationService) UploadVault(ctx context.Context, userID int64, req models.UploadVaultRequest) (models.UploadVaultResponse, error) {
	if userID <= 0 {
		return models.UploadVaultResponse{}, ErrInvalidDataProvided
	}

	if err := v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("vault upload failed validation")
		if errors.Is(err, validators.ErrUnsupportedFormat) {
			return models.UploadVaultResponse{}, fmt.Errorf("%w: %s", ErrUnsupportedVaultFormat, req.Version)
		}
		return models.UploadVaultResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.UploadVault(ctx, userID, req)
}

func (v *VaultValidationService) Wrap(wrapper VaultService) VaultService {
	v.inner = wrapper
	return v
}
