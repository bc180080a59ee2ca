// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SyncState is the locally persisted bookkeeping of the sync engine.
type SyncState struct {
	// IsDirty is true while local mutations have not been confirmed by the
	// server at ServerRevision.
	IsDirty bool `json:"is_dirty"`

	// MutationSequence is incremented on every local write.
	MutationSequence int64 `json:"mutation_sequence"`

	// ServerRevision is the last server revision this device reconciled with.
	ServerRevision int64 `json:"server_revision"`

	// IsSyncing is set between BeginSync and EndSync.
	IsSyncing bool `json:"is_syncing"`

	UpdatedAt time.Time `json:"updated_at"`
}

// StoreVaultRequest combines a blob write with a sync-state transition.
type StoreVaultRequest struct {
	// Blob is the encrypted vault.
	Blob string

	// MarkDirty records the write as a local mutation.
	MarkDirty bool

	// ServerRevision, when set, replaces the stored server revision.
	ServerRevision *int64

	// ExpectedMutationSeq, when set, makes the write conditional on the
	// current mutation sequence.
	ExpectedMutationSeq *int64
}

// VersionCheck is the result of comparing local state with the server.
type VersionCheck struct {
	IsNewVersionAvailable bool
	NewRevision           int64
	SyncState             SyncState
}

// UploadStatus classifies the outcome of an upload.
type UploadStatus string

const (
	UploadStatusOK       UploadStatus = "ok"
	UploadStatusConflict UploadStatus = "conflict"
	UploadStatusFailed   UploadStatus = "failed"
)

// UploadResult describes one upload attempt.
type UploadResult struct {
	Success           bool
	Status            UploadStatus
	NewRevisionNumber int64

	// MutationSeqAtStart is the mutation sequence captured when the uploaded
	// blob was encrypted.
	MutationSeqAtStart int64

	Err error
}

// SyncPhase is the orchestrator's current step.
type SyncPhase string

const (
	SyncPhaseIdle            SyncPhase = "idle"
	SyncPhaseCheckingVersion SyncPhase = "checking_version"
	SyncPhaseUpToDate        SyncPhase = "up_to_date"
	SyncPhaseDownloading     SyncPhase = "downloading"
	SyncPhaseMerging         SyncPhase = "merging"
	SyncPhaseUploading       SyncPhase = "uploading"
)

// SyncReport summarises a finished sync cycle.
type SyncReport struct {
	// Action is the terminal phase the cycle went through (up to date,
	// downloading, merging or uploading).
	Action SyncPhase

	ServerRevision int64

	// MergeAttempts counts merge-then-upload rounds.
	MergeAttempts int

	// StillDirty is true when a local mutation raced the upload and another
	// cycle is needed.
	StillDirty bool

	FinishedAt time.Time
}

// MergeChanges lists what a merge took from each side.
type MergeChanges struct {
	// FromLocal holds item ids whose merged content differs from remote.
	FromLocal []string

	// FromRemote holds item ids whose merged content differs from local.
	FromRemote []string

	// ConflictedFields maps item id to the keys of fields whose values
	// differed between the two sides. The stamp decided which value won.
	ConflictedFields map[string][]string
}

// HasLocalChanges reports whether the merged vault differs from the remote
// one, i.e. whether it must be uploaded.
func (c MergeChanges) HasLocalChanges() bool {
	return len(c.FromLocal) > 0
}
