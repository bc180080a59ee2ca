// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// vault-sync server and client. It is populated by merging defaults, an
// optional JSON file, environment variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as keys, token lifetimes
	// and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings. The server expects a
	// PostgreSQL DSN, the client a SQLite file path.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the remote server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Client holds per-device identity settings.
	Client Client `envPrefix:"CLIENT_"`

	// Workers holds configuration for the background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// PasswordHashKey derives the placeholder salts returned for unknown
	// usernames during login. Must be kept confidential.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long an access token remains valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// RefreshTokenDuration specifies how long a refresh token remains valid.
	// Env: APP_REFRESH_TOKEN_DURATION
	RefreshTokenDuration time.Duration `env:"REFRESH_TOKEN_DURATION"`

	// LoginChallengeTTL bounds the time between the two SRP round trips and
	// the optional second-factor step.
	// Env: APP_LOGIN_CHALLENGE_TTL
	LoginChallengeTTL time.Duration `env:"LOGIN_CHALLENGE_TTL"`

	// TOTPIssuer is the issuer shown by authenticator apps.
	// Env: APP_TOTP_ISSUER
	TOTPIssuer string `env:"TOTP_ISSUER"`

	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Shared by client and server.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name. Empty means debug.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server, "host:port".
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is a PostgreSQL connection string on the server and a SQLite
	// file path on the client.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client's outbound connection settings.
type Adapter struct {
	// HTTPAddress is the server base address, either "host:port" or a full
	// URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Client holds the identity of this device.
type Client struct {
	// Username pre-fills the login screen.
	// Env: CLIENT_USERNAME
	Username string `env:"USERNAME"`

	// DeviceID overrides the device identifier stored in the local
	// database. It becomes the ClientID of every local modification.
	// Env: CLIENT_DEVICE_ID
	DeviceID string `env:"DEVICE_ID"`
}

// Workers holds configuration for the background jobs of both binaries.
type Workers struct {
	// SyncInterval is the period of the background sync job.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// MergeAttempts is the number of merge-then-upload rounds a sync cycle
	// makes before giving up on a conflicting server.
	// Env: WORKERS_MERGE_ATTEMPTS
	MergeAttempts int `env:"MERGE_ATTEMPTS"`

	// ChallengeCleanupInterval is how often the server purges expired
	// login challenges.
	// Env: WORKERS_CHALLENGE_CLEANUP_INTERVAL
	ChallengeCleanupInterval time.Duration `env:"CHALLENGE_CLEANUP_INTERVAL"`
}

// Defaults returns the values used when no source sets a field.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:          "vault-sync",
			TokenDuration:        15 * time.Minute,
			RefreshTokenDuration: 30 * 24 * time.Hour,
			LoginChallengeTTL:    5 * time.Minute,
			TOTPIssuer:           "vault-sync",
			Version:              "1.0.0",
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			GRPCAddress:    "localhost:9090",
			RequestTimeout: 30 * time.Second,
		},
		Adapter: Adapter{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 30 * time.Second,
		},
		Workers: Workers{
			SyncInterval:             time.Minute,
			MergeAttempts:            3,
			ChallengeCleanupInterval: time.Minute,
		},
	}
}

// GetStructuredConfig loads, merges and validates the server configuration.
// Sources are applied in the following order, later sources overriding
// earlier non-zero fields:
//  1. Defaults
//  2. JSON file (path taken from the environment or flags)
//  3. Environment variables
//  4. Command-line flags
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
