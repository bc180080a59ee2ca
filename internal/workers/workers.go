// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the server's background jobs.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewChallengeCleanupWorker(services.AuthService, cfg.ChallengeCleanupInterval, logger),
		},
	}
}

// Run starts every worker and blocks until all of them have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
