// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the server's periodic background jobs.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// ChallengeCleaner removes login challenges that are past their TTL.
// service.AuthService satisfies it.
type ChallengeCleaner interface {
	DeleteExpiredChallenges(ctx context.Context) (int64, error)
}
