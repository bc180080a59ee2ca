// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/store"
	"github.com/MKhiriev/vault-sync/models"
)

// Vault formats the server accepts on upload. Any minor version of the
// maximum major is accepted too.
const (
	MinClientFormat = "1.0.0"
	MaxClientFormat = models.VaultFormatVersion
)

// vaultStatusOK is the status field of a successful GET /api/vault.
const vaultStatusOK = "ok"

// vaultService stores one opaque blob per user. The revision counter in the
// vaults table orders uploads of all devices of the user.
type vaultService struct {
	vaultRepository store.VaultRepository

	logger *logger.Logger
}

func NewVaultService(vaultRepository store.VaultRepository, logger *logger.Logger) VaultService {
	return &vaultService{
		vaultRepository: vaultRepository,
		logger:          logger,
	}
}

// GetVaultStatus reports revision 0 and no format for a user who never
// uploaded.
func (s *vaultService) GetVaultStatus(ctx context.Context, userID int64) (models.VaultStatusResponse, error) {
	log := logger.FromContext(ctx)

	status := models.VaultStatusResponse{
		MinClientFormat: MinClientFormat,
		MaxClientFormat: MaxClientFormat,
	}

	stored, err := s.vaultRepository.GetVaultStatus(ctx, userID)
	switch {
	case errors.Is(err, store.ErrVaultNotFound):
		return status, nil
	case err != nil:
		log.Err(err).Str("func", "*vaultService.GetVaultStatus").Int64("user_id", userID).Msg("error getting vault status")
		return models.VaultStatusResponse{}, mapStoreError("error getting vault status", err)
	}

	status.CurrentRevisionNumber = stored.Revision
	status.FormatVersion = stored.FormatVersion
	return status, nil
}

func (s *vaultService) GetVault(ctx context.Context, userID int64, username string, revision int64) (models.VaultResponse, error) {
	log := logger.FromContext(ctx)

	stored, err := s.vaultRepository.GetVault(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrVaultNotFound) {
			log.Err(err).Str("func", "*vaultService.GetVault").Int64("user_id", userID).Msg("error getting vault")
		}
		return models.VaultResponse{}, mapStoreError("error getting vault", err)
	}

	if revision > 0 && revision != stored.Revision {
		current := stored.Revision
		stored, err = s.vaultRepository.GetVaultRevision(ctx, userID, revision)
		if err != nil {
			if !errors.Is(err, store.ErrVaultNotFound) {
				log.Err(err).Str("func", "*vaultService.GetVault").Int64("user_id", userID).Int64("revision", revision).Msg("error getting vault revision")
			}
			return models.VaultResponse{}, mapStoreError("error getting vault revision", err)
		}
		log.Debug().Int64("revision", revision).Int64("current", current).Msg("serving older vault revision")
	}

	return models.VaultResponse{
		Status: vaultStatusOK,
		Vault:  vaultPayload(username, stored),
	}, nil
}

func (s *vaultService) UploadVault(ctx context.Context, userID int64, req models.UploadVaultRequest) (models.UploadVaultResponse, error) {
	log := logger.FromContext(ctx)

	newRevision, err := s.vaultRepository.SaveVault(ctx, req.PriorRevision, models.StoredVault{
		UserID:           userID,
		Blob:             req.Blob,
		FormatVersion:    req.Version,
		CredentialsCount: req.CredentialsCount,
	})
	if err != nil {
		if errors.Is(err, store.ErrStaleRevision) {
			log.Info().Int64("user_id", userID).Int64("prior_revision", req.PriorRevision).Msg("stale vault upload rejected")
		} else {
			log.Err(err).Str("func", "*vaultService.UploadVault").Int64("user_id", userID).Msg("error saving vault")
		}
		return models.UploadVaultResponse{}, mapStoreError("error saving vault", err)
	}

	log.Info().Int64("user_id", userID).Int64("revision", newRevision).Msg("vault uploaded")
	return models.UploadVaultResponse{CurrentRevisionNumber: newRevision}, nil
}

// vaultPayload fills the wire representation. The e-mail and domain lists
// are part of the protocol but not tracked by this server, so they are sent
// empty.
func vaultPayload(username string, v models.StoredVault) models.VaultPayload {
	return models.VaultPayload{
		Username:                     username,
		Blob:                         v.Blob,
		Version:                      v.FormatVersion,
		CurrentRevisionNumber:        v.Revision,
		CredentialsCount:             v.CredentialsCount,
		EmailAddressList:             []string{},
		PrivateEmailDomainList:       []string{},
		HiddenPrivateEmailDomainList: []string{},
		PublicEmailDomainList:        []string{},
		CreatedAt:                    v.CreatedAt,
		UpdatedAt:                    v.UpdatedAt,
	}
}
