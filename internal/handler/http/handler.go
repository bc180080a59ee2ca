// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/internal/service"
	"github.com/MKhiriev/vault-sync/internal/utils"
)

type Handler struct {
	services *service.Services

	// hashing enables the HashSHA256 check on vault uploads.
	hashing bool

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A non-empty hashKey turns on the
// integrity check of upload bodies.
func NewHandler(services *service.Services, hashKey string, logger *logger.Logger) *Handler {
	if hashKey != "" {
		utils.InitHasherPool(hashKey)
	}

	logger.Info().Bool("hashing", hashKey != "").Msg("http handler created")
	return &Handler{
		services: services,
		hashing:  hashKey != "",
		logger:   logger,
	}
}
