// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when registering a username that is
	// already taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrChallengeNotFound is returned when a login challenge does not exist
	// or was already consumed.
	ErrChallengeNotFound = errors.New("login challenge was not found")

	// ErrRefreshTokenNotFound is returned when a refresh token is unknown,
	// expired or already used.
	ErrRefreshTokenNotFound = errors.New("refresh token was not found")

	// ErrVaultNotFound is returned when the user has not uploaded a vault yet
	// or the requested revision does not exist.
	ErrVaultNotFound = errors.New("vault was not found")

	// ErrStaleRevision is returned when an upload's prior revision does not
	// match the stored one: another device uploaded first.
	ErrStaleRevision = errors.New("stale vault revision")

	// ErrSyncStateConflict is returned by conditional local writes whose
	// expected mutation sequence no longer matches.
	ErrSyncStateConflict = errors.New("local mutation sequence changed")

	// ErrPendingLoginNotFound is returned when no pending two-factor login
	// is stored for the request id, or it has expired.
	ErrPendingLoginNotFound = errors.New("pending login was not found")

	// ErrEncryptionParamsNotFound is returned when the client has never
	// logged in as the requested user.
	ErrEncryptionParamsNotFound = errors.New("encryption params were not found")

	// ErrNoLocalVault is returned when the client database holds no vault
	// blob yet.
	ErrNoLocalVault = errors.New("no local vault")
)

// Low-level database operation errors. These are wrapped by repository
// methods when a SQL-level operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when a transaction cannot start.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing fails. The
	// transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a result row fails.
	ErrScanningRow = errors.New("failed to scan row")
)
