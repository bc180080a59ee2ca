// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	localSelectBlob = `SELECT blob FROM vault_blob WHERE id = 1;`

	localUpsertBlob = `INSERT INTO vault_blob (id, blob, updated_at) VALUES (1, ?, ?)
    ON CONFLICT (id) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at;`

	localSelectSyncState = `SELECT is_dirty, mutation_sequence, server_revision, is_syncing, updated_at
    FROM sync_state
    WHERE id = 1;`

	localRecordMutation = `UPDATE sync_state
    SET is_dirty = 1, mutation_sequence = mutation_sequence + 1, updated_at = ?
    WHERE id = 1;`

	localSetSyncing = `UPDATE sync_state SET is_syncing = ?, updated_at = ? WHERE id = 1;`

	localSetServerRevision = `UPDATE sync_state SET server_revision = ?, updated_at = ? WHERE id = 1;`

	localUpsertEncryptionParams = `INSERT INTO encryption_params (username, salt, encryption_type, encryption_settings)
    VALUES (?, ?, ?, ?)
    ON CONFLICT (username) DO UPDATE SET
        salt = excluded.salt,
        encryption_type = excluded.encryption_type,
        encryption_settings = excluded.encryption_settings;`

	localSelectEncryptionParams = `SELECT salt, encryption_type, encryption_settings
    FROM encryption_params
    WHERE username = ?;`

	localUpsertPendingLogin = `INSERT INTO pending_logins (request_id, username, key_check, params, expires_at)
    VALUES (?, ?, ?, ?, ?)
    ON CONFLICT (request_id) DO UPDATE SET
        username = excluded.username,
        key_check = excluded.key_check,
        params = excluded.params,
        expires_at = excluded.expires_at;`

	localSelectPendingLogin = `SELECT request_id, username, key_check, params, expires_at
    FROM pending_logins
    WHERE request_id = ?;`

	localDeletePendingLogin = `DELETE FROM pending_logins WHERE request_id = ?;`

	localDeleteExpiredPendingLogins = `DELETE FROM pending_logins WHERE expires_at <= ?;`

	localSelectDevice = `SELECT device_id FROM device WHERE id = 1;`

	localInsertDevice = `INSERT INTO device (id, device_id) VALUES (1, ?);`
)
