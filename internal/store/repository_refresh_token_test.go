// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshToken_SaveAndConsume(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRefreshTokenRepository(newDBFromSQL(db), logger.Nop())
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta(saveRefreshToken)).
		WithArgs("hash", int64(7), now.Add(time.Hour)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(consumeRefreshToken)).
		WithArgs("hash").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at"}).AddRow(int64(7), now.Add(time.Hour)))
	mock.ExpectQuery(regexp.QuoteMeta(consumeRefreshToken)).
		WithArgs("hash").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at"}))

	require.NoError(t, repo.SaveRefreshToken(testContext(), 7, "hash", now.Add(time.Hour)))

	userID, err := repo.ConsumeRefreshToken(testContext(), "hash", now)
	require.NoError(t, err)
	assert.Equal(t, int64(7), userID)

	_, err = repo.ConsumeRefreshToken(testContext(), "hash", now)
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRefreshToken_ExpiredIsRejected(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRefreshTokenRepository(newDBFromSQL(db), logger.Nop())
	now := time.Now().UTC()

	mock.ExpectQuery("DELETE FROM refresh_tokens").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "expires_at"}).AddRow(int64(7), now.Add(-time.Second)))

	_, err := repo.ConsumeRefreshToken(testContext(), "hash", now)
	assert.ErrorIs(t, err, ErrRefreshTokenNotFound)
}
