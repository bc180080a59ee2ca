// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the vault-sync server and client.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. JSON config file
//  3. Environment variables
//  4. Command-line flags
//
// [GetStructuredConfig] returns the server configuration and
// [GetClientConfig] the client view.
package config
