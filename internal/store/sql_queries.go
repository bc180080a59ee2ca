// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	createUser = `INSERT INTO users (username, salt, encryption_type, encryption_settings, verifier)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, created_at;`

	findUserByUsername = `SELECT user_id, username, salt, encryption_type, encryption_settings, verifier, COALESCE(totp_secret, ''), created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, salt, encryption_type, encryption_settings, verifier, COALESCE(totp_secret, ''), created_at
    FROM users
    WHERE user_id = $1;`

	setTOTPSecret = `UPDATE users SET totp_secret = NULLIF($2, '') WHERE user_id = $1;`

	saveChallenge = `INSERT INTO auth_challenges (request_id, user_id, username, b_secret, b_public, expires_at)
    VALUES ($1, $2, $3, $4, $5, $6);`

	getChallenge = `SELECT request_id, user_id, username, b_secret, b_public, two_factor_pending, consumed, expires_at
    FROM auth_challenges
    WHERE request_id = $1;`

	markTwoFactorPending = `UPDATE auth_challenges
    SET two_factor_pending = TRUE, expires_at = $2
    WHERE request_id = $1 AND consumed = FALSE;`

	consumeChallenge = `UPDATE auth_challenges
    SET consumed = TRUE
    WHERE request_id = $1 AND consumed = FALSE;`

	deleteExpiredChallenges = `DELETE FROM auth_challenges WHERE expires_at <= $1;`

	saveRefreshToken = `INSERT INTO refresh_tokens (token_hash, user_id, expires_at) VALUES ($1, $2, $3);`

	consumeRefreshToken = `DELETE FROM refresh_tokens
    WHERE token_hash = $1
    RETURNING user_id, expires_at;`

	getVault = `SELECT user_id, revision, blob, format_version, credentials_count, created_at, updated_at
    FROM vaults
    WHERE user_id = $1;`

	getVaultStatus = `SELECT user_id, revision, format_version, credentials_count, created_at, updated_at
    FROM vaults
    WHERE user_id = $1;`

	getVaultRevision = `SELECT user_id, revision, blob, format_version, created_at
    FROM vault_revisions
    WHERE user_id = $1 AND revision = $2;`
)
