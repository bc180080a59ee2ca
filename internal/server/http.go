// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/logger"
)

type httpServer struct {
	server   *http.Server
	listener net.Listener
	logger   *logger.Logger
}

// newHTTPServer binds the listener right away so a busy port fails startup
// instead of the first request.
func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) (*httpServer, error) {
	listener, err := net.Listen("tcp", cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", cfg.HTTPAddress, err)
	}

	return &httpServer{
		server: &http.Server{
			Handler:           http.TimeoutHandler(handler, cfg.RequestTimeout, `{"error":"request timeout"}`),
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      cfg.RequestTimeout + cfg.RequestTimeout/2,
		},
		listener: listener,
		logger:   logger,
	}, nil
}

func (h *httpServer) RunServer(_ context.Context) error {
	h.logger.Info().Str("address", h.listener.Addr().String()).Msg("HTTP server listening")
	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server Shutdown")
	if err := h.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}

func (h *httpServer) addr() string {
	return h.listener.Addr().String()
}
