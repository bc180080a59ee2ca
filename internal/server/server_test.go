// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/handler"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/mock"
	"github.com/MKhiriev/vault-sync/internal/service"
	"github.com/MKhiriev/vault-sync/models"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	appInfo := mock.NewMockAppInfoService(gomock.NewController(t))
	appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("v1.0.0").AnyTimes()
	appInfo.EXPECT().BuildInfo(gomock.Any()).Return(models.VersionResponse{BuildVersion: "v1.0.0"}).AnyTimes()

	handlers, err := handler.NewHandlers(
		&service.Services{AppInfoService: appInfo},
		&config.StructuredConfig{Server: cfg},
		logger.Nop(),
	)
	require.NoError(t, err)
	return handlers
}

func TestNewServer_NoAddresses(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_NilHandlers(t *testing.T) {
	_, err := NewServer(nil, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	assert.ErrorIs(t, err, errNilHandlers)
}

func TestNewServer_PortInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String(), RequestTimeout: time.Second}
	_, err = NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	assert.Error(t, err)
}

func TestServer_RunAndShutdown(t *testing.T) {
	cfg := config.Server{
		HTTPAddress:    "127.0.0.1:0",
		GRPCAddress:    "127.0.0.1:0",
		RequestTimeout: 5 * time.Second,
	}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)
	s := srv.(*server)

	ctx, cancel := context.WithCancel(context.Background())
	result := make(chan error, 1)
	go func() { result <- srv.RunServer(ctx) }()

	// HTTP API answers
	var version models.VersionResponse
	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + s.httpServer.addr() + "/api/version/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK && json.NewDecoder(resp.Body).Decode(&version) == nil
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, "v1.0.0", version.BuildVersion)

	// gRPC health answers
	conn, err := grpc.NewClient(s.gRPCServer.addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)
	defer conn.Close()

	checkCtx, checkCancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer checkCancel()
	health, err := healthpb.NewHealthClient(conn).Check(checkCtx, &healthpb.HealthCheckRequest{}, grpc.WaitForReady(true))
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, health.GetStatus())

	cancel()
	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(ShutdownTimeout):
		t.Fatal("server did not stop")
	}
}
