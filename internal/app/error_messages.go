// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds what the client and the server must agree on: the
// message strings written into HTTP error bodies and the typed error
// taxonomy surfaced to callers of the sync engine.
//
// Msg* constants travel over the wire. The client adapter maps them back to
// typed errors, so changing one is a protocol change.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidCredentials is the single message for every failed login,
	// whether the username is unknown or the proof is wrong.
	MsgInvalidCredentials = "invalid username or password"

	// MsgTwoFactorInvalid is returned when the one-time code is rejected.
	MsgTwoFactorInvalid = "invalid two-factor code"

	// MsgLoginExpired is returned when a login request id is unknown,
	// already used, or past its TTL.
	MsgLoginExpired = "login request expired"

	// MsgTokenIsExpiredOrInvalid is returned when an access or refresh token
	// cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUsernameAlreadyExists is returned by registration.
	MsgUsernameAlreadyExists = "username already exists"

	// MsgNoUserIDProvided is returned when an authenticated route runs
	// without a user in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgStaleRevision is returned with 409 when an upload names a prior
	// revision that is no longer current.
	MsgStaleRevision = "stale revision, please sync"

	// MsgVaultNotFound is returned when the user has not uploaded a vault or
	// the requested revision does not exist.
	MsgVaultNotFound = "vault not found"

	// MsgUnsupportedVaultFormat is returned when an upload carries a vault
	// format the server does not accept.
	MsgUnsupportedVaultFormat = "unsupported vault format"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	MsgIntegrityCheckFailed = "integrity check failed"

	// MsgInternalServerError is returned for unexpected server failures.
	MsgInternalServerError = "internal server error"
)
