// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC side of the vault-sync server. It serves
// the standard health-checking protocol so load balancers and orchestrators
// can probe the server without an account.
package grpc

import (
	"context"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/service"
)

// VaultServiceName is the health service name reported for the vault API.
const VaultServiceName = "vaultsync.Vault"

const traceIDMetadataKey = "x-trace-id"

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register attaches the health service to server and marks the server and
// the vault API as serving.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)

	version := "N/A"
	if h.services != nil && h.services.AppInfoService != nil {
		version = h.services.AppInfoService.GetAppVersion(context.Background())
	}

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(VaultServiceName, healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Str("version", version).Msg("gRPC health service registered")
}

// Shutdown reports NOT_SERVING to all watchers. Called before the gRPC
// server drains.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// UnaryLoggingInterceptor attaches a trace-scoped logger to the call context
// and logs one line per call, like the HTTP access log.
func (h *Handler) UnaryLoggingInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, next grpc.UnaryHandler) (any, error) {
	traceID := ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(traceIDMetadataKey); len(values) > 0 {
			traceID = values[0]
		}
	}
	if _, err := uuid.Parse(traceID); err != nil {
		traceID = uuid.NewString()
	}

	l := h.logger.With().Str("trace_id", traceID).Logger()
	ctx = l.WithContext(ctx)

	start := time.Now()
	resp, err := next(ctx, req)

	event := l.Info()
	if err != nil {
		event = l.Error().Err(err)
	}
	event.Str("method", info.FullMethod).
		Str("code", status.Code(err).String()).
		Dur("duration", time.Since(start)).
		Send()

	return resp, err
}
