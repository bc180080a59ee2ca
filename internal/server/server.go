// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/handler"
	"github.com/MKhiriev/vault-sync/internal/logger"
)

// ShutdownTimeout bounds the graceful drain of both servers.
const ShutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handlers == nil {
		return nil, errNilHandlers
	}
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s, err := newHTTPServer(handlers.HTTP.Init(), cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.httpServer = s
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		s, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			servers.closeListeners()
			return nil, err
		}
		servers.gRPCServer = s
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

// RunServer serves all transports until ctx is cancelled or one of them
// fails, then shuts every transport down.
func (s *server) RunServer(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		g.Go(func() error { return s.httpServer.RunServer(gctx) })
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching gRPC server")
		g.Go(func() error { return s.gRPCServer.RunServer(gctx) })
	}

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Msg("server stopped with error")
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown(ctx context.Context) error {
	var errs []error
	if s.httpServer != nil {
		errs = append(errs, s.httpServer.Shutdown(ctx))
	}
	if s.gRPCServer != nil {
		errs = append(errs, s.gRPCServer.Shutdown(ctx))
	}
	return errors.Join(errs...)
}

func (s *server) closeListeners() {
	if s.httpServer != nil {
		_ = s.httpServer.listener.Close()
	}
}
