// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses configuration flags from args (without the program
// name). Both binaries accept the same set of flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-d database DSN (PostgreSQL DSN or SQLite path)
//	-c/-config json file path with configs
//	-password-hash-key key for placeholder salts of unknown users
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration access token duration (e.g., "15m")
//	-refresh-token-duration refresh token duration (e.g., "720h")
//	-login-challenge-ttl login challenge lifetime (e.g., "5m")
//	-totp-issuer issuer shown by authenticator apps
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key request integrity hash key
//	-log-level zerolog level name
//	-server remote server address used by the client
//	-server-timeout client request timeout
//	-u username pre-filled on the login screen
//	-device-id device identifier override
//	-sync-interval background sync period
//	-merge-attempts merge-then-upload attempts per sync
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("vault-sync", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.PasswordHashKey, "password-hash-key", "", "Placeholder salt key")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Access token duration (e.g., 15m)")
	fs.DurationVar(&cfg.App.RefreshTokenDuration, "refresh-token-duration", 0, "Refresh token duration (e.g., 720h)")
	fs.DurationVar(&cfg.App.LoginChallengeTTL, "login-challenge-ttl", 0, "Login challenge lifetime (e.g., 5m)")
	fs.StringVar(&cfg.App.TOTPIssuer, "totp-issuer", "", "TOTP issuer")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Security hash key")
	fs.StringVar(&cfg.App.LogLevel, "log-level", "", "Log level")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "server", "", "Remote server address")
	fs.DurationVar(&cfg.Adapter.RequestTimeout, "server-timeout", 0, "Remote request timeout")
	fs.StringVar(&cfg.Client.Username, "u", "", "Username")
	fs.StringVar(&cfg.Client.DeviceID, "device-id", "", "Device identifier")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", 0, "Background sync interval")
	fs.IntVar(&cfg.Workers.MergeAttempts, "merge-attempts", 0, "Merge attempts per sync")
	fs.DurationVar(&cfg.Workers.ChallengeCleanupInterval, "cleanup-interval", 0, "Expired login challenge cleanup interval")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
}

// String returns a canonical host:port string for a NetAddress, or an empty
// string when unset.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is
// "localhost" or empty, and returns an error if the format or values are
// invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
