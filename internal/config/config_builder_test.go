// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LayerPriority(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.json = &StructuredConfig{App: App{Version: "json", TokenIssuer: "json-issuer"}}
	b.env = &StructuredConfig{App: App{Version: "env"}}
	b.flags = &StructuredConfig{Workers: Workers{MergeAttempts: 7}}

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 7, cfg.Workers.MergeAttempts)
	assert.Equal(t, time.Minute, cfg.Workers.SyncInterval, "default kept")
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":      "env-version",
		"APP_TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder().withEnv()

	require.NoError(t, b.err)
	require.NotNil(t, b.env)
	assert.Equal(t, "env-version", b.env.App.Version)
	assert.Equal(t, "env-issuer", b.env.App.TokenIssuer)
}

func TestWithEnv_SetsErrorOnInvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{"WORKERS_SYNC_INTERVAL": "sometimes"})

	b := newConfigBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Nil(t, b.env)
}

func TestWithFlags_SetsErrorOnBadArgs(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "nope"})
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	clearEnvVars(t)

	b := newConfigBuilder().withEnv().withFlags(nil).withJSON()
	require.NoError(t, b.err)
	assert.Nil(t, b.json)
}

func TestWithJSON_FlagPathWinsOverEnv(t *testing.T) {
	envPath := writeJSONFile(t, `{"app": {"version": "from-env-file"}}`)
	flagPath := writeJSONFile(t, `{"app": {"version": "from-flag-file"}}`)
	setEnvVars(t, map[string]string{"CONFIG": envPath})

	b := newConfigBuilder().withEnv().withFlags([]string{"-c", flagPath}).withJSON()

	require.NoError(t, b.err)
	require.NotNil(t, b.json)
	assert.Equal(t, "from-flag-file", b.json.App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	clearEnvVars(t)

	b := newConfigBuilder().withFlags([]string{"-c", "/no/such/config.json"}).withJSON()
	require.Error(t, b.err)
	assert.Contains(t, b.err.Error(), "error reading a json file")
}

func TestWithJSON_SkipsWhenErrorAlreadySet(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError
	b.flags = &StructuredConfig{JSONFilePath: "/no/such/config.json"}

	b.withJSON()
	assert.Nil(t, b.json)
	assert.ErrorIs(t, b.err, assert.AnError)
}

// ── entry points ──────────────────────────────────────────────────────────────

func TestGetStructuredConfig(t *testing.T) {
	clearEnvVars(t)
	jsonPath := writeJSONFile(t, `{"app": {"token_sign_key": "json-key", "password_hash_key": "salt"}}`)
	setEnvVars(t, map[string]string{
		"CONFIG":                  jsonPath,
		"STORAGE_DB_DATABASE_URI": "postgres://localhost/vault",
	})

	cfg, err := GetStructuredConfig([]string{"-token-sign-key", "flag-key"})

	require.NoError(t, err)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "salt", cfg.App.PasswordHashKey)
	assert.Equal(t, "postgres://localhost/vault", cfg.Storage.DB.DSN)
	assert.Equal(t, 15*time.Minute, cfg.App.TokenDuration)
}

func TestGetStructuredConfig_Invalid(t *testing.T) {
	clearEnvVars(t)

	_, err := GetStructuredConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestGetClientConfig(t *testing.T) {
	clearEnvVars(t)
	setEnvVars(t, map[string]string{
		"APP_HASH_KEY":    "hash",
		"CLIENT_USERNAME": "alice",
	})

	cfg, err := GetClientConfig([]string{"-d", "/tmp/vault-sync/vault.db", "-server", "localhost:8080"})

	require.NoError(t, err)
	assert.Equal(t, "alice", cfg.Identity.Username)
	assert.Equal(t, "/tmp/vault-sync", cfg.DataDir())
	assert.Equal(t, 3, cfg.Workers.MergeAttempts)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
}
