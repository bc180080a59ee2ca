// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewAppInfoService
// ─────────────────────────────────────────────

func TestNewAppInfoService_Success(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, svc)
}

func TestNewAppInfoService_EmptyVersion_ReturnsError(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: ""}, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, svc)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionIsNotSpecified))
}

// ─────────────────────────────────────────────
// GetAppVersion
// ─────────────────────────────────────────────

func TestGetAppVersion_ReturnsConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "3.1.4"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "3.1.4", svc.GetAppVersion(context.Background()))
}

func TestGetAppVersion_DifferentInstances_IndependentVersions(t *testing.T) {
	svc1, err := NewAppInfoService(config.App{Version: "1.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	svc2, err := NewAppInfoService(config.App{Version: "2.0.0"}, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)

	assert.Equal(t, "1.0.0", svc1.GetAppVersion(context.Background()))
	assert.Equal(t, "2.0.0", svc2.GetAppVersion(context.Background()))
}

// ─────────────────────────────────────────────
// BuildInfo
// ─────────────────────────────────────────────

func TestBuildInfo_FallsBackToConfiguredVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.2.0"}, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	info := svc.BuildInfo(context.Background())

	assert.Equal(t, "1.2.0", info.BuildVersion)
	assert.Equal(t, "N/A", info.BuildDate)
	assert.Equal(t, "N/A", info.BuildCommit)
	assert.Equal(t, models.VaultFormatVersion, info.VaultFormat)
}

func TestBuildInfo_LinkerVersionWins(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "1.2.0"}, models.NewAppBuildInfo("v1.3.0", "2026-10-01", "abc123"), logger.Nop())
	require.NoError(t, err)

	info := svc.BuildInfo(context.Background())

	assert.Equal(t, "v1.3.0", info.BuildVersion)
	assert.Equal(t, "2026-10-01", info.BuildDate)
	assert.Equal(t, "abc123", info.BuildCommit)
}
