// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front end driven by [App].
type UI interface {
	// LoginFlow blocks until the vault is unlocked and returns the username.
	LoginFlow(ctx context.Context) (string, error)

	// MainLoop blocks until the user quits or locks the vault. logout is
	// true when the vault was locked and the login flow should run again.
	MainLoop(ctx context.Context) (logout bool, err error)

	// Notify tells the user why the vault was locked. It is called before
	// the next LoginFlow.
	Notify(err error)
}
