// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/logger"
)

// DefaultSyncInterval is used when Start is given no interval.
const DefaultSyncInterval = time.Minute

type clientSyncJob struct {
	syncService ClientSyncService

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
	fatal  chan error

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.Sync on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		syncService: syncService,
		fatal:       make(chan error, 1),
		logger:      logger,
	}
}

// Start stops any previously running job, then launches a goroutine that
// syncs every interval. The goroutine exits when ctx is cancelled or Stop is
// called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	j.Stop()

	// drop a fatal error left over from the previous session
	select {
	case <-j.fatal:
	default:
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.mu.Unlock()

	j.wg.Go(func() {
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.tick(jobCtx); err != nil {
					j.fatal <- err
					return
				}
			}
		}
	})
}

// tick runs one sync cycle. It returns the error only when the job must
// stop.
func (j *clientSyncJob) tick(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := j.syncService.Sync(ctx)
	switch {
	case err == nil, errors.Is(err, ErrVaultLocked), errors.Is(err, context.Canceled):
	case errors.Is(err, app.ErrVersionIncompatible):
		log.Err(err).Str("func", "*clientSyncJob.tick").Msg("vault format is not supported, stopping background sync")
		return err
	case app.IsRecoverable(err):
		log.Warn().Err(err).Msg("background sync failed, retrying on next tick")
	default:
		log.Err(err).Str("func", "*clientSyncJob.tick").Msg("background sync failed")
	}
	return nil
}

func (j *clientSyncJob) Fatal() <-chan error {
	return j.fatal
}

// Stop cancels the background goroutine and blocks until it has exited.
// It is a no-op when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
