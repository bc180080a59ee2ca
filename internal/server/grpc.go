// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/vault-sync/internal/config"
	myGRPC "github.com/MKhiriev/vault-sync/internal/handler/grpc"
	"github.com/MKhiriev/vault-sync/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.UnaryLoggingInterceptor))
	handler.Register(server)

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer(_ context.Context) error {
	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

// Shutdown flips health to NOT_SERVING, then drains. If ctx expires first
// the remaining calls are cut off.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}

func (g *grpcServer) addr() string {
	return g.gRPCNetListener.Addr().String()
}
