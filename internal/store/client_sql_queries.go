// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveSession = `
		INSERT INTO sessions (id, server_url, token, user_id, email, name, role, saved_at)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			server_url = excluded.server_url,
			token      = excluded.token,
			user_id    = excluded.user_id,
			email      = excluded.email,
			name       = excluded.name,
			role       = excluded.role,
			saved_at   = excluded.saved_at;`

	getSession = `
		SELECT server_url, token, user_id, email, name, role, saved_at
		FROM sessions
		WHERE id = 1;`

	deleteSession = `DELETE FROM sessions WHERE id = 1;`
)
