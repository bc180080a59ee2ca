// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/models"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService fails with ErrVersionIsNotSpecified when cfg has no
// version. A build version injected by the linker takes precedence over the
// configured one in BuildInfo.
func NewAppInfoService(cfg config.App, buildInfo models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		buildInfo:  buildInfo,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.VersionResponse {
	resp := s.buildInfo.Response()
	if resp.BuildVersion == "N/A" {
		resp.BuildVersion = s.appVersion
	}
	return resp
}
