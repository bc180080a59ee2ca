// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/handler"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/server"
	"github.com/MKhiriev/vault-sync/internal/service"
	"github.com/MKhiriev/vault-sync/internal/store"
	"github.com/MKhiriev/vault-sync/internal/workers"
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

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	log := logger.NewLogger("vault-server", logLevel(cfg))
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		workers.NewWorkers(services, cfg.Workers, log).Run(gctx)
		return nil
	})
	g.Go(func() error {
		return srv.RunServer(gctx)
	})

	if err = g.Wait(); err != nil {
		log.Error().Err(err).Msg("server run error")
		stop()
		storages.Close()
		os.Exit(1)
	}
}

func logLevel(cfg *config.StructuredConfig) string {
	if cfg == nil {
		return ""
	}
	return cfg.App.LogLevel
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
