// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/vault-sync/internal/store"
)

// mapStoreError translates repository sentinels into service business errors.
// Unknown errors are wrapped with op and passed through.
func mapStoreError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrLoginAlreadyExists):
		return ErrUsernameAlreadyExists
	case errors.Is(err, store.ErrChallengeNotFound):
		return ErrLoginExpired
	case errors.Is(err, store.ErrRefreshTokenNotFound):
		return ErrTokenIsExpiredOrInvalid
	case errors.Is(err, store.ErrVaultNotFound):
		return ErrVaultNotFound
	case errors.Is(err, store.ErrStaleRevision):
		return ErrStaleRevision
	}
	return fmt.Errorf("%s: %w", op, err)
}
