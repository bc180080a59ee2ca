// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
)

// Category sentinels. Every typed error below matches exactly one of them
// with errors.Is.
var (
	ErrAuth                = errors.New("authentication error")
	ErrCrypto              = errors.New("crypto error")
	ErrSyncConflict        = errors.New("sync conflict")
	ErrVersionIncompatible = errors.New("vault version incompatible")
	ErrNetwork             = errors.New("network error")
)

// AuthReason says why authentication failed.
type AuthReason int

const (
	InvalidCredentials AuthReason = iota + 1
	TwoFactorRequired
	TwoFactorInvalid
	ServerTooOld
	SessionExpired
	LoginExpired
)

// AuthError is returned by the login flow and by authenticated calls.
type AuthError struct {
	Reason AuthReason
	Err    error
}

func (e *AuthError) Error() string {
	switch e.Reason {
	case InvalidCredentials:
		return MsgInvalidCredentials
	case TwoFactorRequired:
		return "two-factor authentication required"
	case TwoFactorInvalid:
		return MsgTwoFactorInvalid
	case ServerTooOld:
		return "server version is too old"
	case SessionExpired:
		return "session expired, please log in again"
	case LoginExpired:
		return MsgLoginExpired
	}
	return ErrAuth.Error()
}

func (e *AuthError) Is(target error) bool { return target == ErrAuth }
func (e *AuthError) Unwrap() error        { return e.Err }

// CryptoKind separates derivation failures from decryption failures. The
// message of a CryptoError never says more than its kind.
type CryptoKind int

const (
	KeyDerivation CryptoKind = iota + 1
	Decryption
)

// CryptoError reports a key derivation or decryption failure. A wrong key
// and a corrupted blob produce the same error.
type CryptoError struct {
	Kind CryptoKind
	Err  error
}

func (e *CryptoError) Error() string {
	if e.Kind == KeyDerivation {
		return "key derivation failed"
	}
	return "decryption failed"
}

func (e *CryptoError) Is(target error) bool { return target == ErrCrypto }
func (e *CryptoError) Unwrap() error        { return e.Err }

// SyncConflictError is returned when the server revision moved under an
// upload. It is resolved by merge-then-retry; Exhausted is set when the
// retry budget ran out.
type SyncConflictError struct {
	Attempts  int
	Exhausted bool
	Err       error
}

func (e *SyncConflictError) Error() string {
	if e.Exhausted {
		return fmt.Sprintf("sync conflict not resolved after %d attempts", e.Attempts)
	}
	return "sync conflict: server revision is newer"
}

func (e *SyncConflictError) Is(target error) bool { return target == ErrSyncConflict }
func (e *SyncConflictError) Unwrap() error        { return e.Err }

// VersionIncompatibleError is fatal: this client cannot read or write the
// vault format. The caller must lock the vault.
type VersionIncompatibleError struct {
	Local     string
	Supported string
}

func (e *VersionIncompatibleError) Error() string {
	return fmt.Sprintf("vault format %s is not supported (supported: %s)", e.Local, e.Supported)
}

func (e *VersionIncompatibleError) Is(target error) bool { return target == ErrVersionIncompatible }

// NetworkError wraps transport failures and timeouts. The local vault stays
// usable and the next sync cycle retries.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("network error during %s", e.Op)
	}
	return fmt.Sprintf("network error during %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Is(target error) bool { return target == ErrNetwork }
func (e *NetworkError) Unwrap() error        { return e.Err }

// IsRecoverable reports whether a later sync cycle may succeed without user
// action.
func IsRecoverable(err error) bool {
	var conflict *SyncConflictError
	if errors.As(err, &conflict) {
		return true
	}
	return errors.Is(err, ErrNetwork)
}
