// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed database operation should be
// retried.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors, constraint
	// violations and syntax errors.
	NonRetryable ErrorClassification = iota

	// Retryable marks transient failures such as a lost connection, a
	// serialization failure or a deadlock.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err as a *pgconn.PgError and classifies its code.
// Anything else is [NonRetryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if err == nil || !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
//
// Retryable codes:
//   - Class 08 connection exceptions
//   - Class 40 transaction rollback, serialization failure, deadlock
//   - 55P03 lock not available
//   - 57P03 cannot connect now
//
// Every other code, including class 23 integrity violations raised by a
// concurrent vault upload, is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return Retryable

	case pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected:
		return Retryable

	case pgerrcode.LockNotAvailable,
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
