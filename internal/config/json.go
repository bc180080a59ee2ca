// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		PasswordHashKey      string   `json:"password_hash_key"`
		TokenSignKey         string   `json:"token_sign_key"`
		TokenIssuer          string   `json:"token_issuer"`
		TokenDuration        Duration `json:"token_duration"`
		RefreshTokenDuration Duration `json:"refresh_token_duration"`
		LoginChallengeTTL    Duration `json:"login_challenge_ttl"`
		TOTPIssuer           string   `json:"totp_issuer"`
		HashKey              string   `json:"hash_key"`
		Version              string   `json:"version"`
		LogLevel             string   `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Client struct {
		Username string `json:"username"`
		DeviceID string `json:"device_id"`
	} `json:"client,omitempty"`

	Workers struct {
		SyncInterval             Duration `json:"sync_interval"`
		MergeAttempts            int      `json:"merge_attempts"`
		ChallengeCleanupInterval Duration `json:"challenge_cleanup_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			PasswordHashKey:      jsonCfg.App.PasswordHashKey,
			TokenSignKey:         jsonCfg.App.TokenSignKey,
			TokenIssuer:          jsonCfg.App.TokenIssuer,
			TokenDuration:        time.Duration(jsonCfg.App.TokenDuration),
			RefreshTokenDuration: time.Duration(jsonCfg.App.RefreshTokenDuration),
			LoginChallengeTTL:    time.Duration(jsonCfg.App.LoginChallengeTTL),
			TOTPIssuer:           jsonCfg.App.TOTPIssuer,
			HashKey:              jsonCfg.App.HashKey,
			Version:              jsonCfg.App.Version,
			LogLevel:             jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Client: Client{
			Username: jsonCfg.Client.Username,
			DeviceID: jsonCfg.Client.DeviceID,
		},
		Workers: Workers{
			SyncInterval:             time.Duration(jsonCfg.Workers.SyncInterval),
			MergeAttempts:            jsonCfg.Workers.MergeAttempts,
			ChallengeCleanupInterval: time.Duration(jsonCfg.Workers.ChallengeCleanupInterval),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
