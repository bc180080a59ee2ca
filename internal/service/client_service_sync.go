// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/merge"
	"github.com/MKhiriev/vault-sync/internal/store"
	"github.com/MKhiriev/vault-sync/internal/validators"
	"github.com/MKhiriev/vault-sync/models"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"
)

const (
	// MaxMergeAttempts is the default bound on merge-then-upload rounds of
	// one cycle.
	MaxMergeAttempts = 3

	mergeBackoffBase = 100 * time.Millisecond
	syncFlightKey    = "vault"
)

type clientSyncService struct {
	vaultStore    store.LocalVaultStore
	protocol      ClientVaultProtocol
	cryptoService ClientCryptoService
	validator     validators.Validator

	flight singleflight.Group

	mu         sync.RWMutex
	phase      models.SyncPhase
	lastReport models.SyncReport
	lastErr    error

	// backoff builds the schedule of one merge loop. It is rebuilt per
	// cycle because go-retry backoffs are stateful.
	backoff func() retry.Backoff

	now    func() time.Time
	logger *logger.Logger
}

func NewClientSyncService(vaultStore store.LocalVaultStore, protocol ClientVaultProtocol, cryptoService ClientCryptoService, mergeAttempts int, logger *logger.Logger) ClientSyncService {
	if mergeAttempts <= 0 {
		mergeAttempts = MaxMergeAttempts
	}

	return &clientSyncService{
		vaultStore:    vaultStore,
		protocol:      protocol,
		cryptoService: cryptoService,
		validator:     validators.NewVaultValidator(models.VaultFormatVersion, models.VaultFormatVersion),
		phase:         models.SyncPhaseIdle,
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(uint64(mergeAttempts-1), retry.NewExponential(mergeBackoffBase))
		},
		now:    time.Now,
		logger: logger,
	}
}

// Sync runs one cycle. Callers arriving while a cycle is in flight share
// its result.
func (s *clientSyncService) Sync(ctx context.Context) (models.SyncReport, error) {
	v, err, shared := s.flight.Do(syncFlightKey, func() (any, error) {
		report, err := s.run(ctx)

		s.mu.Lock()
		s.lastReport, s.lastErr = report, err
		s.mu.Unlock()

		return report, err
	})
	if shared {
		logger.FromContext(ctx).Debug().Msg("joined sync cycle in flight")
	}

	report, _ := v.(models.SyncReport)
	return report, err
}

func (s *clientSyncService) Phase() models.SyncPhase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

func (s *clientSyncService) LastResult() (models.SyncReport, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastReport, s.lastErr
}

func (s *clientSyncService) setPhase(phase models.SyncPhase) {
	s.mu.Lock()
	s.phase = phase
	s.mu.Unlock()
}

func (s *clientSyncService) run(ctx context.Context) (models.SyncReport, error) {
	log := logger.FromContext(ctx)

	if !s.cryptoService.Unlocked() {
		return models.SyncReport{}, ErrVaultLocked
	}

	defer s.setPhase(models.SyncPhaseIdle)

	if _, err := s.vaultStore.BeginSync(ctx); err != nil {
		return models.SyncReport{}, fmt.Errorf("error starting sync: %w", err)
	}
	defer func() {
		if err := s.vaultStore.EndSync(context.WithoutCancel(ctx)); err != nil {
			log.Err(err).Str("func", "*clientSyncService.run").Msg("error clearing syncing flag")
		}
	}()

	s.setPhase(models.SyncPhaseCheckingVersion)
	check, err := s.protocol.CheckVersion(ctx)
	if err != nil {
		log.Err(err).Str("func", "*clientSyncService.run").Msg("version check failed")
		return models.SyncReport{}, err
	}

	report := models.SyncReport{ServerRevision: check.SyncState.ServerRevision}
	dirty := check.SyncState.IsDirty

	switch {
	case !check.IsNewVersionAvailable && !dirty:
		report.Action = models.SyncPhaseUpToDate
		s.setPhase(models.SyncPhaseUpToDate)

	case check.IsNewVersionAvailable && !dirty:
		report.Action = models.SyncPhaseDownloading
		s.setPhase(models.SyncPhaseDownloading)
		err = s.protocol.DownloadVault(ctx, check.NewRevision)
		if errors.Is(err, ErrPendingLocalChanges) || errors.Is(err, ErrLocalStateChanged) {
			// an edit landed after the version check
			report.Action = models.SyncPhaseMerging
			err = s.mergeAndUpload(ctx, &report)
		} else if err == nil {
			report.ServerRevision = check.NewRevision
		}

	case !check.IsNewVersionAvailable && dirty:
		report.Action = models.SyncPhaseUploading
		s.setPhase(models.SyncPhaseUploading)
		var conflict bool
		conflict, err = s.upload(ctx, &report)
		if conflict {
			report.Action = models.SyncPhaseMerging
			err = s.mergeAndUpload(ctx, &report)
		}

	default:
		report.Action = models.SyncPhaseMerging
		err = s.mergeAndUpload(ctx, &report)
	}

	if err != nil {
		log.Err(err).Str("func", "*clientSyncService.run").Str("action", string(report.Action)).Msg("sync cycle failed")
		return report, err
	}

	report.FinishedAt = s.now()
	log.Info().
		Str("action", string(report.Action)).
		Int64("server_revision", report.ServerRevision).
		Int("merge_attempts", report.MergeAttempts).
		Bool("still_dirty", report.StillDirty).
		Msg("sync cycle finished")
	return report, nil
}

// upload sends the local vault and commits the clean state. It reports
// whether the server rejected the upload as stale.
func (s *clientSyncService) upload(ctx context.Context, report *models.SyncReport) (bool, error) {
	result := s.protocol.UploadVault(ctx)

	switch result.Status {
	case models.UploadStatusOK:
		committed, err := s.vaultStore.CommitCleanIfUnchanged(ctx, result.MutationSeqAtStart, result.NewRevisionNumber)
		if err != nil {
			return false, fmt.Errorf("error committing sync state: %w", err)
		}
		report.ServerRevision = result.NewRevisionNumber
		report.StillDirty = !committed
		return false, nil
	case models.UploadStatusConflict:
		return true, result.Err
	}
	return false, result.Err
}

// mergeAndUpload merges the server vault into the local one and uploads the
// result. A stale upload or a local edit racing the merge starts another
// round, up to the configured number of attempts.
func (s *clientSyncService) mergeAndUpload(ctx context.Context, report *models.SyncReport) error {
	log := logger.FromContext(ctx)

	err := retry.Do(ctx, s.backoff(), func(ctx context.Context) error {
		report.MergeAttempts++
		s.setPhase(models.SyncPhaseMerging)

		needsUpload, err := s.mergeOnce(ctx, report)
		if errors.Is(err, ErrLocalStateChanged) {
			return retry.RetryableError(err)
		}
		if err != nil || !needsUpload {
			return err
		}

		s.setPhase(models.SyncPhaseUploading)
		conflict, err := s.upload(ctx, report)
		if conflict {
			log.Info().Int("attempt", report.MergeAttempts).Msg("upload after merge rejected as stale, merging again")
			return retry.RetryableError(err)
		}
		return err
	})

	if errors.Is(err, app.ErrSyncConflict) || errors.Is(err, ErrLocalStateChanged) {
		return &app.SyncConflictError{Attempts: report.MergeAttempts, Exhausted: true, Err: err}
	}
	return err
}

// mergeOnce stores merge(local, server) locally. It reports whether the
// merged vault holds anything the server does not have.
func (s *clientSyncService) mergeOnce(ctx context.Context, report *models.SyncReport) (bool, error) {
	log := logger.FromContext(ctx)

	blob, state, err := s.vaultStore.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("error loading local vault: %w", err)
	}
	local, err := s.cryptoService.DecryptVault(blob)
	if err != nil {
		return false, err
	}

	remote, remoteRevision := models.NewVault(), int64(0)
	resp, err := s.protocol.FetchServerVault(ctx)
	switch {
	case errors.Is(err, ErrVaultNotFound):
		// nothing uploaded yet, merge against an empty vault
	case err != nil:
		return false, err
	default:
		if remote, err = s.cryptoService.DecryptVault(resp.Vault.Blob); err != nil {
			return false, err
		}
		if err = checkVaultFormat(ctx, s.validator, remote); err != nil {
			return false, err
		}
		remoteRevision = resp.Vault.CurrentRevisionNumber
	}

	merged, changes := merge.Merge(local, remote)
	log.Debug().
		Strs("from_local", changes.FromLocal).
		Strs("from_remote", changes.FromRemote).
		Int("conflicted_items", len(changes.ConflictedFields)).
		Int64("server_revision", remoteRevision).
		Msg("vaults merged")

	mergedBlob, err := s.cryptoService.EncryptVault(merged)
	if err != nil {
		return false, err
	}

	needsUpload := changes.HasLocalChanges()
	seq := state.MutationSequence
	stored, err := s.vaultStore.StoreWithSyncState(ctx, models.StoreVaultRequest{
		Blob:                mergedBlob,
		MarkDirty:           needsUpload,
		ServerRevision:      &remoteRevision,
		ExpectedMutationSeq: &seq,
	})
	if err != nil {
		return false, fmt.Errorf("error storing merged vault: %w", err)
	}
	if !stored {
		return false, ErrLocalStateChanged
	}

	report.ServerRevision = remoteRevision
	return needsUpload, nil
}
