// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package store

const (
	insertGameRecord = `
		INSERT INTO game_records (
			server_id,
			player_name,
			difficulty,
			start_time,
			end_time,
			duration_seconds,
			moves,
			matches,
			errors,
			completed,
			source,
			synthesized
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);`

	attachServerID = `
		UPDATE game_records
		SET server_id = $1
		WHERE id = $2;`

	deleteServerRowsAll = `
		DELETE FROM game_records
		WHERE source = 'server';`

	deleteServerRowsByDifficulty = `
		DELETE FROM game_records
		WHERE source = 'server' AND difficulty = $1;`

	deleteAllRecords = `
		DELETE FROM game_records;`

	countRecords = `
		SELECT COUNT(*) FROM game_records;`
)

// gameRecordColumns is the canonical SELECT column order shared by every
// read query. Scan destinations in queryRecords must match it.
var gameRecordColumns = []string{
	"id",
	"server_id",
	"player_name",
	"difficulty",
	"start_time",
	"end_time",
	"duration_seconds",
	"moves",
	"matches",
	"errors",
	"completed",
	"source",
	"synthesized",
}
