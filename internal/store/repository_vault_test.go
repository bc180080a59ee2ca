// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/models"
	"github.com/jackc/pgerrcode"
	"github.com/sethvargo/go-retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestVaultRepo(t *testing.T) (*vaultRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &vaultRepository{
		db:     newDBFromSQL(db),
		logger: logger.Nop(),
		now:    func() time.Time { return fixedNow },
		backoff: func() retry.Backoff {
			return retry.WithMaxRetries(2, retry.NewConstant(time.Millisecond))
		},
	}, mock
}

func testStoredVault() models.StoredVault {
	return models.StoredVault{
		UserID:           7,
		Blob:             "ciphertext",
		FormatVersion:    models.VaultFormatVersion,
		CredentialsCount: 3,
	}
}

// ── SaveVault ────────────────────────────────────────────────────────────────

func TestSaveVault_FirstUpload(t *testing.T) {
	repo, mock := newTestVaultRepo(t)
	v := testStoredVault()

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO vaults .* ON CONFLICT \\(user_id\\) DO NOTHING RETURNING revision").
		WithArgs(v.UserID, 1, v.Blob, v.FormatVersion, v.CredentialsCount, fixedNow, fixedNow).
		WillReturnRows(sqlmock.NewRows([]string{"revision"}).AddRow(int64(1)))
	mock.ExpectExec("INSERT INTO vault_revisions").
		WithArgs(v.UserID, int64(1), v.Blob, v.FormatVersion, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rev, err := repo.SaveVault(testContext(), 0, v)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveVault_FirstUploadRace(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO vaults").WillReturnRows(sqlmock.NewRows([]string{"revision"}))
	mock.ExpectRollback()

	_, err := repo.SaveVault(testContext(), 0, testStoredVault())
	assert.ErrorIs(t, err, ErrStaleRevision)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveVault_CompareAndSwap(t *testing.T) {
	repo, mock := newTestVaultRepo(t)
	v := testStoredVault()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE vaults SET revision = revision + 1")+".*WHERE user_id = \\$5 AND revision = \\$6 RETURNING revision").
		WithArgs(v.Blob, v.FormatVersion, v.CredentialsCount, fixedNow, v.UserID, int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"revision"}).AddRow(int64(5)))
	mock.ExpectExec("INSERT INTO vault_revisions").
		WithArgs(v.UserID, int64(5), v.Blob, v.FormatVersion, fixedNow).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rev, err := repo.SaveVault(testContext(), 4, v)
	require.NoError(t, err)
	assert.Equal(t, int64(5), rev)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveVault_StaleRevisionIsNotRetried(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE vaults").WillReturnRows(sqlmock.NewRows([]string{"revision"}))
	mock.ExpectRollback()

	_, err := repo.SaveVault(testContext(), 3, testStoredVault())
	assert.ErrorIs(t, err, ErrStaleRevision)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveVault_RetriesSerializationFailure(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE vaults").WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectRollback()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE vaults").WillReturnRows(sqlmock.NewRows([]string{"revision"}).AddRow(int64(4)))
	mock.ExpectExec("INSERT INTO vault_revisions").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rev, err := repo.SaveVault(testContext(), 3, testStoredVault())
	require.NoError(t, err)
	assert.Equal(t, int64(4), rev)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveVault_GivesUpAfterRetries(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	for range 3 {
		mock.ExpectBegin()
		mock.ExpectQuery("UPDATE vaults").WillReturnError(pgError(pgerrcode.DeadlockDetected))
		mock.ExpectRollback()
	}

	_, err := repo.SaveVault(testContext(), 3, testStoredVault())
	require.Error(t, err)
	assert.Equal(t, Retryable, NewPostgresErrorClassifier().Classify(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveVault_ConstraintViolationIsNotRetried(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE vaults").WillReturnError(pgError(pgerrcode.CheckViolation))
	mock.ExpectRollback()

	_, err := repo.SaveVault(testContext(), 3, testStoredVault())
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// ── Reads ────────────────────────────────────────────────────────────────────

func TestGetVault(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getVault)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "revision", "blob", "format_version", "credentials_count", "created_at", "updated_at"}).
			AddRow(int64(7), int64(5), "ciphertext", "1.0.0", 3, fixedNow, fixedNow))
	mock.ExpectQuery(regexp.QuoteMeta(getVault)).
		WithArgs(int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

	v, err := repo.GetVault(testContext(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(5), v.Revision)
	assert.Equal(t, "ciphertext", v.Blob)

	_, err = repo.GetVault(testContext(), 8)
	assert.ErrorIs(t, err, ErrVaultNotFound)
}

func TestGetVaultStatus_DriverError(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getVaultStatus)).WillReturnError(errors.New("boom"))

	_, err := repo.GetVaultStatus(testContext(), 7)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGetVaultRevision(t *testing.T) {
	repo, mock := newTestVaultRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(getVaultRevision)).
		WithArgs(int64(7), int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "revision", "blob", "format_version", "created_at"}).
			AddRow(int64(7), int64(2), "old", "1.0.0", fixedNow))

	v, err := repo.GetVaultRevision(testContext(), 7, 2)
	require.NoError(t, err)
	assert.Equal(t, "old", v.Blob)
	assert.Equal(t, fixedNow, v.UpdatedAt)
}
