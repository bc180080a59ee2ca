// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/vault-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SyncStateStore keeps the encrypted local vault and the sync bookkeeping
// consistent with each other. Every method is atomic.
type SyncStateStore interface {
	// Load returns the stored blob and sync state. The blob is empty when
	// no vault was stored yet.
	Load(ctx context.Context) (string, models.SyncState, error)

	// State returns the sync state alone.
	State(ctx context.Context) (models.SyncState, error)

	// RecordLocalMutation marks the vault dirty and increments the mutation
	// sequence.
	RecordLocalMutation(ctx context.Context) (models.SyncState, error)

	// BeginSync sets the syncing flag and returns the mutation sequence at
	// that moment.
	BeginSync(ctx context.Context) (int64, error)

	// EndSync clears the syncing flag.
	EndSync(ctx context.Context) error

	// CommitCleanIfUnchanged clears the dirty flag and records newRevision
	// only if no local mutation happened since seqAtStart. It reports
	// whether the state was committed.
	CommitCleanIfUnchanged(ctx context.Context, seqAtStart, newRevision int64) (bool, error)

	// StoreWithSyncState writes the blob together with a state transition.
	// It reports false without writing when ExpectedMutationSeq is set and
	// does not match.
	StoreWithSyncState(ctx context.Context, req models.StoreVaultRequest) (bool, error)
}

// LocalVaultUpdater applies a local edit to the stored blob atomically.
type LocalVaultUpdater interface {
	// UpdateVault loads the current blob and state, passes them to fn and
	// stores the returned blob as a local mutation. Nothing is written when
	// fn fails.
	UpdateVault(ctx context.Context, fn func(blob string, state models.SyncState) (string, error)) (models.SyncState, error)
}

// LocalVaultStore is the full client-side vault storage.
type LocalVaultStore interface {
	SyncStateStore
	LocalVaultUpdater
}

// EncryptionParamsRepository caches each user's key-derivation parameters
// so the vault can be unlocked offline.
type EncryptionParamsRepository interface {
	SaveEncryptionParams(ctx context.Context, username string, params models.EncryptionParams) error
	GetEncryptionParams(ctx context.Context, username string) (models.EncryptionParams, error)
}

// PendingLoginRepository persists logins waiting for a second factor.
type PendingLoginRepository interface {
	SavePendingLogin(ctx context.Context, login models.PendingLogin) error
	// GetPendingLogin returns ErrPendingLoginNotFound for unknown or expired
	// entries. Expired entries are removed.
	GetPendingLogin(ctx context.Context, requestID string) (models.PendingLogin, error)
	DeletePendingLogin(ctx context.Context, requestID string) error
	DeleteExpiredPendingLogins(ctx context.Context) (int64, error)
}

// DeviceRepository holds this installation's identity.
type DeviceRepository interface {
	// GetOrCreateDevice returns the stored device, creating it with
	// newDevice on first use.
	GetOrCreateDevice(ctx context.Context, newDevice func() (models.Device, error)) (models.Device, error)
}
