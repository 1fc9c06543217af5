// SPDX-License-Identifier: Apache-2.0

package store

const (
	createSiteConfigsTable = `
		CREATE TABLE IF NOT EXISTS site_configs (
			id           TEXT PRIMARY KEY,
			hostname     TEXT NOT NULL UNIQUE,
			display_name TEXT NOT NULL,
			positioning  TEXT,
			created_at   TIMESTAMP NOT NULL,
			updated_at   TIMESTAMP NOT NULL
		);`

	createBackupsTable = `
		CREATE TABLE IF NOT EXISTS backups (
			id          TEXT PRIMARY KEY,
			label       TEXT NOT NULL DEFAULT '',
			cipher_text TEXT NOT NULL,
			salt        TEXT NOT NULL,
			iv          TEXT NOT NULL,
			created_at  TIMESTAMP NOT NULL
		);`

	selectConfigIDByHostname = `
		SELECT id
		FROM site_configs
		WHERE hostname = $1;`

	insertSiteConfig = `
		INSERT INTO site_configs (
			id,
			hostname,
			display_name,
			positioning,
			created_at,
			updated_at
		) VALUES ($1, $2, $3, $4, $5, $6);`

	updateSiteConfig = `
		UPDATE site_configs
		SET display_name = $1,
			positioning = $2,
			updated_at = $3
		WHERE hostname = $4;`

	selectConfigByHostname = `
		SELECT
			hostname,
			display_name,
			positioning
		FROM site_configs
		WHERE hostname = $1;`

	selectAllConfigs = `
		SELECT
			hostname,
			display_name,
			positioning
		FROM site_configs
		ORDER BY hostname;`

	deleteConfigByHostname = `
		DELETE FROM site_configs
		WHERE hostname = $1;`

	insertBackup = `
		INSERT INTO backups (
			id,
			label,
			cipher_text,
			salt,
			iv,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6);`

	deleteBackupsBefore = `
		DELETE FROM backups
		WHERE created_at < $1;`

	selectAllBackups = `
		SELECT
			id,
			label,
			cipher_text,
			salt,
			iv,
			created_at
		FROM backups
		ORDER BY created_at DESC;`
)
