// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/vault-sync/internal/adapter"
	"github.com/MKhiriev/vault-sync/internal/client"
	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/service"
	"github.com/MKhiriev/vault-sync/internal/store"
	"github.com/MKhiriev/vault-sync/internal/tui"
	"github.com/MKhiriev/vault-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("vault-client", "").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log := logger.NewClientLogger("vault-client", cfg.App.LogLevel, cfg.DataDir())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating local storage")
	}
	defer storages.Close()

	services, err := service.NewClientServices(ctx, storages, serverAdapter, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client services")
	}

	ui := tui.New(services, buildInfo, cfg.Identity.Username, log)

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating client app")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, err)
		stop()
		storages.Close()
		os.Exit(1)
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
