// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client runs the interactive vault client.
//
// [App] alternates the login flow and the unlocked main loop. While the vault
// is unlocked it keeps the background sync job running and locks the key
// store when the user logs out or quits.
package client
