// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/vault-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientCryptoService holds the vault key of the unlocked session. The key
// lives only in memory; every method fails with ErrVaultLocked while no key
// is set.
type ClientCryptoService interface {
	// SetEncryptionKey stores a copy of the vault key. It is called after a
	// successful login or an offline unlock.
	SetEncryptionKey(key []byte)

	// ClearEncryptionKey wipes the key from memory.
	ClearEncryptionKey()

	Unlocked() bool

	// EncryptVault returns the encrypted canonical form of v.
	EncryptVault(v models.Vault) (string, error)

	// DecryptVault decrypts blob. An empty blob yields an empty vault.
	DecryptVault(blob string) (models.Vault, error)
}

// ClientAuthService drives the client side of registration and the SRP
// login exchange. It owns the login state machine:
//
//	Idle → ChallengeRequested → ChallengeReceived → ProofSubmitted
//	ProofSubmitted → Authenticated | TwoFactorRequired | Failed
//	TwoFactorRequired → Authenticated | Failed
type ClientAuthService interface {
	State() models.LoginState

	// Username returns the user of the current session, or "".
	Username() string

	// Register derives the keys from password and uploads the SRP verifier.
	// It does not log in.
	Register(ctx context.Context, username, password string) error

	// Login runs InitiateLogin and ValidateLogin. It reports whether a
	// second factor is needed.
	Login(ctx context.Context, username, password string) (bool, error)

	InitiateLogin(ctx context.Context, username string) error

	// ValidateLogin derives the key, submits the proof and verifies the
	// server proof. It reports whether a second factor is needed; the
	// pending login is then persisted so it survives a restart.
	ValidateLogin(ctx context.Context, password string) (bool, error)

	// ValidateLogin2FA completes a login waiting for a second factor.
	ValidateLogin2FA(ctx context.Context, code string) error

	// ResumeLogin reloads a persisted pending login after a restart. The
	// vault key is derived from password again and checked against the
	// stored key check.
	ResumeLogin(ctx context.Context, requestID, password string) error

	// PendingRequestID returns the request id of a login waiting for a
	// second factor, or "".
	PendingRequestID() string

	// CancelLogin discards the current exchange and its persisted state.
	CancelLogin(ctx context.Context) error

	// Unlock opens the local vault offline with the cached encryption
	// params of username.
	Unlock(ctx context.Context, username, password string) error

	// Lock wipes the vault key. Tokens are kept, so a later unlock can
	// sync without a new login until they expire.
	Lock()

	EnableTwoFactor(ctx context.Context) (models.EnableTwoFactorResponse, error)
}

// ClientVaultService edits the local vault. Every mutation is one atomic
// read-modify-write of the encrypted blob that also marks the vault dirty.
// Mutations never touch the network.
type ClientVaultService interface {
	// Items returns the items sorted by name. Tombstones are included only
	// when includeDeleted is set.
	Items(ctx context.Context, includeDeleted bool) ([]models.Item, error)
	Item(ctx context.Context, itemID string) (models.Item, error)

	// CreateItem assigns an id and stamps to draft and stores it.
	CreateItem(ctx context.Context, draft models.Item) (models.Item, error)

	// SetField adds or replaces a field. A field with an empty key is added
	// as a new custom field.
	SetField(ctx context.Context, itemID string, field models.ItemField) (models.Item, error)

	// DeleteField tombstones a custom field.
	DeleteField(ctx context.Context, itemID, fieldKey string) (models.Item, error)

	Rename(ctx context.Context, itemID, name string) (models.Item, error)
	SetTags(ctx context.Context, itemID string, tags []string) (models.Item, error)
	MoveToFolder(ctx context.Context, itemID, folderID string) (models.Item, error)

	// DeleteItem tombstones the item. RestoreItem clears the tombstone.
	DeleteItem(ctx context.Context, itemID string) error
	RestoreItem(ctx context.Context, itemID string) error

	// FieldHistory returns prior values of a field, newest first.
	FieldHistory(ctx context.Context, itemID, fieldKey string) ([]models.FieldHistory, error)
}

// ClientVaultProtocol moves the encrypted vault between the local store and
// the server's single revision counter.
type ClientVaultProtocol interface {
	// CheckVersion compares the server revision with the local state.
	CheckVersion(ctx context.Context) (models.VersionCheck, error)

	// DownloadVault replaces the local vault with the server's. It refuses
	// with ErrPendingLocalChanges while the local vault is dirty.
	DownloadVault(ctx context.Context, revision int64) error

	// UploadVault sends the local vault as the next revision. The result
	// carries the mutation sequence the uploaded blob was read at.
	UploadVault(ctx context.Context) models.UploadResult

	// FetchServerVault returns the current server vault without storing it.
	FetchServerVault(ctx context.Context) (models.VaultResponse, error)
}

// ClientSyncService runs sync cycles. Concurrent calls share one cycle.
type ClientSyncService interface {
	Sync(ctx context.Context) (models.SyncReport, error)

	// Phase returns the step the running cycle is in, or SyncPhaseIdle.
	Phase() models.SyncPhase

	// LastResult returns the outcome of the last finished cycle.
	LastResult() (models.SyncReport, error)
}

// ClientSyncJob defines the contract for a background sync worker that
// periodically calls Sync.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 1 minute if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// Fatal delivers an error the job cannot recover from, such as an
	// incompatible vault format. The job stops ticking after sending it.
	Fatal() <-chan error
}
