// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/vault-sync/internal/config"
	"github.com/MKhiriev/vault-sync/internal/logger"
	"github.com/MKhiriev/vault-sync/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a sqlmock connection as a PostgreSQL DB.
func newDBFromSQL(db *sql.DB) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
		dialect:            migrations.DialectPostgres,
	}
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// newTestSQLite opens a migrated SQLite database in a temporary directory.
func newTestSQLite(t *testing.T) *DB {
	t.Helper()

	cfg := config.ClientDB{DSN: filepath.Join(t.TempDir(), "vault", "local.db")}
	db, err := NewConnectSQLite(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, db.Migrate())
	return db
}
