// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/vault-sync/internal/app"
	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/service"
	"github.com/MKhiriev/vault-sync/internal/tui"
)

type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrNilDependency
	}
	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run alternates the login flow and the main loop until the user quits.
// While the vault is unlocked the sync job runs in the background; locking
// stops it and wipes the key.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	for {
		username, err := a.ui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return fmt.Errorf("login flow: %w", err)
		}
		a.logger.Info().Str("username", username).Msg("vault unlocked")

		logout, err := a.runUnlocked(ctx)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}
		a.logger.Info().Str("username", username).Msg("vault locked")
	}
}

// runUnlocked runs the main loop while the vault is unlocked. A fatal sync
// error from the initial sync or the sync job closes the main loop and
// forces a logout.
func (a *App) runUnlocked(ctx context.Context) (bool, error) {
	syncCtx, cancelSync := context.WithCancel(ctx)
	uiCtx, cancelUI := context.WithCancel(ctx)
	defer cancelUI()

	var (
		wg      sync.WaitGroup
		lockErr error
	)
	initialErr := make(chan error, 1)
	jobErr := a.services.SyncJob.Fatal()

	wg.Go(func() {
		if err := a.initialSync(syncCtx); err != nil {
			initialErr <- err
		}
	})
	a.services.SyncJob.Start(syncCtx, a.workers.SyncInterval)

	wg.Go(func() {
		select {
		case err := <-initialErr:
			lockErr = err
		case err := <-jobErr:
			lockErr = err
		case <-syncCtx.Done():
			return
		}
		cancelUI()
	})

	logout, err := a.ui.MainLoop(uiCtx)

	cancelSync()
	a.services.SyncJob.Stop()
	wg.Wait()
	a.services.AuthService.Lock()

	if lockErr != nil {
		a.logger.Error().Err(lockErr).Str("func", "*App.runUnlocked").Msg("vault locked after a fatal sync error")
		a.ui.Notify(lockErr)
		return true, nil
	}
	return logout, err
}

// initialSync pulls changes made on other devices right after unlock. It
// returns only errors that must lock the vault.
func (a *App) initialSync(ctx context.Context) error {
	report, err := a.services.SyncService.Sync(ctx)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		return nil
	case errors.Is(err, app.ErrVersionIncompatible):
		return err
	default:
		a.logger.Warn().Err(err).Str("func", "*App.initialSync").Msg("initial sync failed")
		return nil
	}
	a.logger.Info().
		Str("action", string(report.Action)).
		Int64("revision", report.ServerRevision).
		Msg("initial sync finished")
	return nil
}
