// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// HashKey is the HMAC key used by the client for payload integrity checks.
	HashKey string
	// Version is the client build version.
	Version string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientIdentity holds the optional username and device overrides.
type ClientIdentity struct {
	Username string
	DeviceID string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the sync job runs.
	SyncInterval time.Duration
	// MergeAttempts bounds merge-then-upload rounds per sync.
	MergeAttempts int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App      ClientApp
	Adapter  ClientAdapter
	Storage  ClientStorage
	Identity ClientIdentity
	Workers  ClientWorkers
}

// DataDir returns the directory that holds the local database. The client
// log file is written there too.
func (c *ClientConfig) DataDir() string {
	return filepath.Dir(c.Storage.DB.DSN)
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			HashKey:  cfg.App.HashKey,
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Identity: ClientIdentity{
			Username: cfg.Client.Username,
			DeviceID: cfg.Client.DeviceID,
		},
		Workers: ClientWorkers{
			SyncInterval:  cfg.Workers.SyncInterval,
			MergeAttempts: cfg.Workers.MergeAttempts,
		},
	}
}
