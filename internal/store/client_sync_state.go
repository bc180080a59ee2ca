// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/models"
)

// syncStateStore is the SQLite implementation of [SyncStateStore] and
// [LocalVaultUpdater]. Every method holds mu for its whole transaction.
type syncStateStore struct {
	mu     sync.Mutex
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSyncStateStore constructs the client vault and sync-state store.
func NewSyncStateStore(db *DB, logger *logger.Logger) LocalVaultStore {
	return &syncStateStore{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *syncStateStore) nowMillis() int64 {
	return s.now().UTC().UnixMilli()
}

func (s *syncStateStore) Load(ctx context.Context) (string, models.SyncState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		blob  string
		state models.SyncState
	)
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		if blob, err = readBlob(ctx, tx); err != nil {
			return err
		}
		state, err = readSyncState(ctx, tx)
		return err
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*syncStateStore.Load").Msg("error loading local vault")
		return "", models.SyncState{}, err
	}
	return blob, state, nil
}

func (s *syncStateStore) State(ctx context.Context) (models.SyncState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var state models.SyncState
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		var err error
		state, err = readSyncState(ctx, tx)
		return err
	})
	return state, err
}

func (s *syncStateStore) RecordLocalMutation(ctx context.Context) (models.SyncState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var state models.SyncState
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, localRecordMutation, s.nowMillis()); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		var err error
		state, err = readSyncState(ctx, tx)
		return err
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*syncStateStore.RecordLocalMutation").Msg("error recording local mutation")
	}
	return state, err
}

func (s *syncStateStore) UpdateVault(ctx context.Context, fn func(blob string, state models.SyncState) (string, error)) (models.SyncState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var state models.SyncState
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		blob, err := readBlob(ctx, tx)
		if err != nil {
			return err
		}
		if state, err = readSyncState(ctx, tx); err != nil {
			return err
		}

		newBlob, err := fn(blob, state)
		if err != nil {
			return err
		}

		now := s.nowMillis()
		if _, err = tx.ExecContext(ctx, localUpsertBlob, newBlob, now); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if _, err = tx.ExecContext(ctx, localRecordMutation, now); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		state, err = readSyncState(ctx, tx)
		return err
	})
	return state, err
}

func (s *syncStateStore) BeginSync(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var seq int64
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, localSetSyncing, 1, s.nowMillis()); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		state, err := readSyncState(ctx, tx)
		seq = state.MutationSequence
		return err
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*syncStateStore.BeginSync").Msg("error starting sync")
	}
	return seq, err
}

func (s *syncStateStore) EndSync(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, localSetSyncing, 0, s.nowMillis()); err != nil {
		s.logger.Err(err).Str("func", "*syncStateStore.EndSync").Msg("error ending sync")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// CommitCleanIfUnchanged always records newRevision, because the uploaded
// content is part of the local vault either way. The dirty flag is cleared
// only when the sequence still equals seqAtStart.
func (s *syncStateStore) CommitCleanIfUnchanged(ctx context.Context, seqAtStart, newRevision int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var committed bool
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		now := s.nowMillis()
		query, args, err := s.db.builder().
			Update("sync_state").
			Set("is_dirty", 0).
			Set("server_revision", newRevision).
			Set("updated_at", now).
			Where(sq.Eq{"id": 1}).
			Where(sq.Eq{"mutation_sequence": seqAtStart}).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		if committed = affected == 1; committed {
			return nil
		}

		if _, err = tx.ExecContext(ctx, localSetServerRevision, newRevision, now); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*syncStateStore.CommitCleanIfUnchanged").Msg("error committing sync state")
		return false, err
	}
	return committed, nil
}

// StoreWithSyncState writes req.Blob and applies the state transition:
//   - MarkDirty marks the vault dirty and increments the sequence.
//   - Otherwise a ServerRevision marks the vault clean at that revision.
func (s *syncStateStore) StoreWithSyncState(ctx context.Context, req models.StoreVaultRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := false
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		state, err := readSyncState(ctx, tx)
		if err != nil {
			return err
		}
		if req.ExpectedMutationSeq != nil && *req.ExpectedMutationSeq != state.MutationSequence {
			return nil
		}

		now := s.nowMillis()
		if _, err = tx.ExecContext(ctx, localUpsertBlob, req.Blob, now); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		update := s.db.builder().
			Update("sync_state").
			Set("updated_at", now).
			Where(sq.Eq{"id": 1})
		switch {
		case req.MarkDirty:
			update = update.
				Set("is_dirty", 1).
				Set("mutation_sequence", sq.Expr("mutation_sequence + 1"))
		case req.ServerRevision != nil:
			update = update.Set("is_dirty", 0)
		}
		if req.ServerRevision != nil {
			update = update.Set("server_revision", *req.ServerRevision)
		}

		query, args, err := update.ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		stored = true
		return nil
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*syncStateStore.StoreWithSyncState").Msg("error storing local vault")
		return false, err
	}
	return stored, nil
}

func readBlob(ctx context.Context, tx *sql.Tx) (string, error) {
	var blob string
	err := tx.QueryRowContext(ctx, localSelectBlob).Scan(&blob)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", nil
	case err != nil:
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return blob, nil
}

func readSyncState(ctx context.Context, tx *sql.Tx) (models.SyncState, error) {
	var (
		state     models.SyncState
		updatedAt int64
	)
	err := tx.QueryRowContext(ctx, localSelectSyncState).Scan(
		&state.IsDirty,
		&state.MutationSequence,
		&state.ServerRevision,
		&state.IsSyncing,
		&updatedAt,
	)
	if err != nil {
		return models.SyncState{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	state.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return state, nil
}
