// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/vault-sync/internal/logger"
)

const defaultCleanupInterval = time.Minute

// ChallengeCleanupWorker purges expired SRP challenges and pending
// second-factor logins on a ticker. Validation already rejects expired
// challenges; this only keeps the table small.
type ChallengeCleanupWorker struct {
	cleaner  ChallengeCleaner
	interval time.Duration
	logger   *logger.Logger
}

func NewChallengeCleanupWorker(cleaner ChallengeCleaner, interval time.Duration, logger *logger.Logger) *ChallengeCleanupWorker {
	if interval <= 0 {
		interval = defaultCleanupInterval
	}
	return &ChallengeCleanupWorker{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger.Component("challenge-cleanup"),
	}
}

// Run cleans once immediately, then every interval until ctx is done.
func (w *ChallengeCleanupWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("challenge cleanup worker started")
	defer w.logger.Info().Msg("challenge cleanup worker stopped")

	t := time.NewTicker(w.interval)
	defer t.Stop()

	for {
		w.cleanup(ctx)

		select {
		case <-ctx.Done():
			return
		case <-t.C:
		}
	}
}

func (w *ChallengeCleanupWorker) cleanup(ctx context.Context) {
	deleted, err := w.cleaner.DeleteExpiredChallenges(ctx)
	switch {
	case err == nil:
		if deleted > 0 {
			w.logger.Debug().Int64("deleted", deleted).Msg("expired challenges removed")
		}
	case errors.Is(err, context.Canceled):
	default:
		w.logger.Err(err).Str("func", "*ChallengeCleanupWorker.cleanup").Msg("failed to delete expired challenges")
	}
}
