// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle contract shared by the transport servers.
type Server interface {
	// RunServer serves until ctx is cancelled or the server fails, then
	// shuts down gracefully.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones until
	// ctx expires.
	Shutdown(ctx context.Context) error
}
