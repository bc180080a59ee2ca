// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the vault-sync transports.
//
// It starts the HTTP API and the gRPC health endpoint together and shuts
// both down gracefully when the run context is cancelled.
package server
