// SPDX-License-Identifier: Apache-2.0

package store

const (
	getStoredVar = `
		SELECT value
		FROM storedvars
		WHERE name = ?;`

	upsertStoredVar = `
		INSERT INTO storedvars (name, value)
		VALUES (?, ?)
		ON CONFLICT (name) DO UPDATE SET value = excluded.value;`

	getAllPatients = `
		SELECT
			id,
			forename,
			surname,
			dob,
			sex,
			idnum1,
			idnum2,
			idnum3,
			idnum4,
			idnum5,
			idnum6,
			idnum7,
			idnum8,
			_move_off_tablet
		FROM patient
		ORDER BY id;`

	deleteAllExtraStrings = `
		DELETE FROM extrastrings;`

	insertExtraString = `
		INSERT INTO extrastrings (task, name, value)
		VALUES (?, ?, ?)
		ON CONFLICT (task, name) DO UPDATE SET value = excluded.value;`

	lookupExtraString = `
		SELECT value
		FROM extrastrings
		WHERE task = ? AND name = ?;`

	listUserTables = `
		SELECT name
		FROM sqlite_master
		WHERE type = 'table'
		  AND name NOT LIKE 'sqlite_%'
		  AND name NOT LIKE 'goose_%'
		  AND name <> 'extrastrings'
		ORDER BY name;`
)
