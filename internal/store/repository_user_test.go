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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{
	"user_id", "username", "salt", "encryption_type", "encryption_settings", "verifier", "totp_secret", "created_at",
}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &userRepository{db: newDBFromSQL(db), logger: logger.Nop()}, mock
}

func testUser() models.User {
	return models.User{
		Username: "alice",
		EncryptionParams: models.EncryptionParams{
			Salt:               "c2FsdA==",
			EncryptionType:     "argon2id",
			EncryptionSettings: `{"time":3,"memory":65536,"threads":4}`,
		},
		Verifier: "0abc",
	}
}

// ── CreateUser ───────────────────────────────────────────────────────────────

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	user := testUser()
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(createUser)).
		WithArgs(user.Username, user.Salt, user.EncryptionType, user.EncryptionSettings, user.Verifier).
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "created_at"}).AddRow(7, now))

	created, err := repo.CreateUser(testContext(), user)
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.UserID)
	assert.Equal(t, now, created.CreatedAt)
	assert.Equal(t, user.Verifier, created.Verifier)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(testContext(), testUser())
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(testContext(), testUser())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
	assert.NotErrorIs(t, err, ErrLoginAlreadyExists)
}

// ── FindUser ─────────────────────────────────────────────────────────────────

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta(findUserByUsername)).
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(userColumns).
			AddRow(7, "alice", "c2FsdA==", "argon2id", "{}", "0abc", "JBSWY3DPEHPK3PXP", now))

	user, err := repo.FindUserByUsername(testContext(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(7), user.UserID)
	assert.Equal(t, "argon2id", user.EncryptionType)
	assert.True(t, user.TwoFactorEnabled())
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByUsername(testContext(), "ghost")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByID_UnexpectedError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta(findUserByID)).
		WithArgs(int64(7)).
		WillReturnError(errors.New("db failure"))

	_, err := repo.FindUserByID(testContext(), 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
}

func TestFindUserByID_ScanError(t *testing.T) {
	repo, mock := newTestUserRepo(t)

	mock.ExpectQuery("SELECT user_id").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(7))

	_, err := repo.FindUserByID(testContext(), 7)
	assert.Error(t, err)
}

// ── SetTOTPSecret ────────────────────────────────────────────────────────────

func TestSetTOTPSecret(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		execErr  error
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "unknown user", affected: 0, wantErr: ErrNoUserWasFound},
		{name: "driver error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)

			exp := mock.ExpectExec(regexp.QuoteMeta(setTOTPSecret)).WithArgs(int64(7), "SECRET")
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, tt.affected))
			}

			err := repo.SetTOTPSecret(testContext(), 7, "SECRET")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
