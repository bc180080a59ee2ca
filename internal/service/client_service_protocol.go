// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/vault-sync/internal/adapter"
	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/store"
	"github.com/MKhiriev/vault-sync/internal/validators"
	"github.com/MKhiriev/vault-sync/models"
)

type clientVaultProtocol struct {
	adapter       adapter.ServerAdapter
	vaultStore    store.LocalVaultStore
	cryptoService ClientCryptoService
	validator     validators.Validator

	logger *logger.Logger
}

func NewClientVaultProtocol(serverAdapter adapter.ServerAdapter, vaultStore store.LocalVaultStore, cryptoService ClientCryptoService, logger *logger.Logger) ClientVaultProtocol {
	return &clientVaultProtocol{
		adapter:       serverAdapter,
		vaultStore:    vaultStore,
		cryptoService: cryptoService,
		validator:     validators.NewVaultValidator(models.VaultFormatVersion, models.VaultFormatVersion),
		logger:        logger,
	}
}

// CheckVersion makes one status request. It fails with a
// VersionIncompatibleError when the server does not accept this build's
// vault format or holds a vault of another major format.
func (p *clientVaultProtocol) CheckVersion(ctx context.Context) (models.VersionCheck, error) {
	status, err := p.adapter.GetVaultStatus(ctx)
	if err != nil {
		return models.VersionCheck{}, mapAdapterError("vault status", err)
	}

	if !validators.IsSupportedFormat(models.VaultFormatVersion, status.MinClientFormat, status.MaxClientFormat) {
		return models.VersionCheck{}, &app.VersionIncompatibleError{
			Local:     models.VaultFormatVersion,
			Supported: status.MinClientFormat + " - " + status.MaxClientFormat,
		}
	}
	if status.FormatVersion != "" && !validators.SameMajor(status.FormatVersion, models.VaultFormatVersion) {
		return models.VersionCheck{}, &app.VersionIncompatibleError{
			Local:     models.VaultFormatVersion,
			Supported: status.FormatVersion,
		}
	}

	state, err := p.vaultStore.State(ctx)
	if err != nil {
		return models.VersionCheck{}, fmt.Errorf("error reading sync state: %w", err)
	}

	return models.VersionCheck{
		IsNewVersionAvailable: status.CurrentRevisionNumber > state.ServerRevision,
		NewRevision:           status.CurrentRevisionNumber,
		SyncState:             state,
	}, nil
}

// DownloadVault stores the server blob as is: it is encrypted with the same
// vault key. The write is conditional on the mutation sequence read before
// the download, so a local edit made meanwhile is never overwritten.
func (p *clientVaultProtocol) DownloadVault(ctx context.Context, revision int64) error {
	log := logger.FromContext(ctx)

	state, err := p.vaultStore.State(ctx)
	if err != nil {
		return fmt.Errorf("error reading sync state: %w", err)
	}
	if state.IsDirty {
		return ErrPendingLocalChanges
	}

	resp, err := p.adapter.GetVault(ctx, revision)
	if err != nil {
		return mapAdapterError("download vault", err)
	}

	if _, err = p.decryptRemote(ctx, resp); err != nil {
		return err
	}

	rev := resp.Vault.CurrentRevisionNumber
	seq := state.MutationSequence
	stored, err := p.vaultStore.StoreWithSyncState(ctx, models.StoreVaultRequest{
		Blob:                resp.Vault.Blob,
		ServerRevision:      &rev,
		ExpectedMutationSeq: &seq,
	})
	if err != nil {
		return fmt.Errorf("error storing downloaded vault: %w", err)
	}
	if !stored {
		log.Info().Int64("revision", rev).Msg("local edit raced the download, keeping it")
		return ErrLocalStateChanged
	}

	log.Info().Int64("revision", rev).Msg("vault downloaded")
	return nil
}

// UploadVault sends the stored blob together with the revision it was based
// on. Blob and sequence are read in one transaction, so MutationSeqAtStart
// describes exactly the uploaded content.
func (p *clientVaultProtocol) UploadVault(ctx context.Context) models.UploadResult {
	log := logger.FromContext(ctx)

	blob, state, err := p.vaultStore.Load(ctx)
	if err != nil {
		return failedUpload(fmt.Errorf("error loading local vault: %w", err))
	}

	vault, err := p.cryptoService.DecryptVault(blob)
	if err != nil {
		return failedUpload(err)
	}
	if blob == "" {
		// nothing stored yet, upload an empty vault
		if blob, err = p.cryptoService.EncryptVault(vault); err != nil {
			return failedUpload(err)
		}
	}

	req := models.UploadVaultRequest{
		PriorRevision:    state.ServerRevision,
		Blob:             blob,
		Version:          vault.FormatVersion,
		CredentialsCount: len(vault.ActiveItems()),
	}
	if err = p.validator.Validate(ctx, req); err != nil {
		return failedUpload(fmt.Errorf("%w: %w", ErrInvalidDataProvided, err))
	}

	resp, err := p.adapter.UploadVault(ctx, req)
	if err != nil {
		mapped := mapAdapterError("upload vault", err)
		if errors.Is(mapped, app.ErrSyncConflict) {
			log.Info().Int64("prior_revision", state.ServerRevision).Msg("server revision moved, upload rejected")
			return models.UploadResult{Status: models.UploadStatusConflict, MutationSeqAtStart: state.MutationSequence, Err: mapped}
		}
		return failedUpload(mapped)
	}

	return models.UploadResult{
		Success:            true,
		Status:             models.UploadStatusOK,
		NewRevisionNumber:  resp.CurrentRevisionNumber,
		MutationSeqAtStart: state.MutationSequence,
	}
}

func (p *clientVaultProtocol) FetchServerVault(ctx context.Context) (models.VaultResponse, error) {
	resp, err := p.adapter.GetVault(ctx, 0)
	if err != nil {
		return models.VaultResponse{}, mapAdapterError("fetch vault", err)
	}
	return resp, nil
}

// decryptRemote opens a server vault and checks that this build can read
// it.
func (p *clientVaultProtocol) decryptRemote(ctx context.Context, resp models.VaultResponse) (models.Vault, error) {
	remote, err := p.cryptoService.DecryptVault(resp.Vault.Blob)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientVaultProtocol.decryptRemote").Msg("server vault cannot be decrypted")
		return models.Vault{}, err
	}
	return remote, checkVaultFormat(ctx, p.validator, remote)
}

// checkVaultFormat rejects vaults of another major format and vaults that
// break the item rules.
func checkVaultFormat(ctx context.Context, validator validators.Validator, v models.Vault) error {
	if !validators.SameMajor(v.FormatVersion, models.VaultFormatVersion) {
		return &app.VersionIncompatibleError{Local: models.VaultFormatVersion, Supported: v.FormatVersion}
	}
	if err := validator.Validate(ctx, v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func failedUpload(err error) models.UploadResult {
	return models.UploadResult{Status: models.UploadStatusFailed, Err: err}
}
