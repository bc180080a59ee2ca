// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the vault-sync server.
//
// It wires the chi routes for registration, the SRP login exchange, token
// refresh and the single-blob vault endpoints. Cross-cutting concerns such
// as authentication, request tracing, access logging, compression and the
// HashSHA256 integrity check are handled here before requests reach the
// service layer.
package http
