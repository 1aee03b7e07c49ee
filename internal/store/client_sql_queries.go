// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveSession = `
		INSERT INTO session (id, token, subject_id, saved_at)
		VALUES (1, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			token = excluded.token,
			subject_id = excluded.subject_id,
			saved_at = excluded.saved_at;`

	getSession = `SELECT token, subject_id, saved_at FROM session WHERE id = 1;`

	deleteSession = `DELETE FROM session WHERE id = 1;`

	saveTrustState = `
		INSERT INTO trust_state (id, subject_id, elevated_at)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			subject_id = excluded.subject_id,
			elevated_at = excluded.elevated_at;`

	getTrustState = `SELECT subject_id, elevated_at FROM trust_state WHERE id = 1;`

	deleteTrustState = `DELETE FROM trust_state WHERE id = 1;`

	saveAuthenticatorKey = `
		INSERT INTO authenticator_keys (credential_id, rp_id, user_handle, private_key, sign_count)
		VALUES (?, ?, ?, ?, ?);`

	getAuthenticatorKey = `
		SELECT credential_id, rp_id, user_handle, private_key, sign_count
		FROM authenticator_keys
		WHERE credential_id = ?;`

	listAuthenticatorKeys = `
		SELECT credential_id, rp_id, user_handle, private_key, sign_count
		FROM authenticator_keys
		WHERE rp_id = ? AND user_handle = ?
		ORDER BY created_at;`

	incrementAuthenticatorSignCount = `
		UPDATE authenticator_keys
		SET sign_count = sign_count + 1
		WHERE credential_id = ?
		RETURNING sign_count;`
)
