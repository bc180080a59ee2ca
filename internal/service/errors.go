// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Server-side business errors. Handlers map them to HTTP statuses.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown username and a wrong
	// proof. The two cases must stay indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTwoFactorInvalid = errors.New("invalid two-factor code")
	ErrLoginExpired     = errors.New("login request expired")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrUsernameAlreadyExists = errors.New("username already exists")

	ErrStaleRevision          = errors.New("stale vault revision")
	ErrVaultNotFound          = errors.New("vault not found")
	ErrUnsupportedVaultFormat = errors.New("unsupported vault format")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	// ErrVaultLocked is returned by vault operations while no key is held.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrPendingLocalChanges is returned by DownloadVault when the local
	// vault has unsynced edits that a download would overwrite.
	ErrPendingLocalChanges = errors.New("local vault has pending changes")

	// ErrLocalStateChanged is returned when a local edit raced a download or
	// merge. The next sync cycle picks the edit up.
	ErrLocalStateChanged = errors.New("local vault changed during sync")

	// ErrLocalVaultBelongsToAnotherAccount is returned after a successful
	// login whose key cannot open the vault already stored on this device.
	ErrLocalVaultBelongsToAnotherAccount = errors.New("local vault belongs to another account")

	// ErrUnknownUser is returned by offline unlock for a user who never
	// logged in on this device.
	ErrUnknownUser = errors.New("user never logged in on this device")

	ErrInvalidLoginState = errors.New("operation not allowed in current login state")

	ErrItemNotFound  = errors.New("item not found")
	ErrFieldNotFound = errors.New("field not found")

	ErrRegisterOnServer = errors.New("registration on server failed")
)
