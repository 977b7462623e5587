// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package models

// SaveStatsRequest is the body of POST /api/stats/save. ClientID and LocalID
// let the service detect resends of the same record from the same
// installation and answer with a duplicate response instead of a second row.
type SaveStatsRequest struct {
	ClientID        string  `json:"client_id"`
	PlayerName      string  `json:"player_name"`
	Difficulty      string  `json:"difficulty"`
	StartTime       float64 `json:"start_time"`
	EndTime         float64 `json:"end_time"`
	DurationSeconds float64 `json:"duration_seconds"`
	Moves           int     `json:"moves"`
	Matches         int     `json:"matches"`
	Errors          int     `json:"errors"`
	Completed       bool    `json:"completed"`
	LocalID         int64   `json:"local_id"`
}

// SaveStatsResponse is returned by the save endpoint with HTTP 200 on accept
// and HTTP 409 when the record already exists server-side.
type SaveStatsResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	ID        int64  `json:"id"`
	Duplicate bool   `json:"duplicate,omitempty"`
}

// LeaderboardEntry is one ranked row of GET /api/stats/leaderboard/{difficulty}.
// The service ranks completed games by duration ascending, errors ascending,
// and omits full session fields.
type LeaderboardEntry struct {
	ID              int64   `json:"id"`
	PlayerName      string  `json:"player_name"`
	Difficulty      string  `json:"difficulty"`
	DurationSeconds float64 `json:"duration_seconds"`
	Errors          int     `json:"errors"`

	// Matches is reported by newer service builds only.
	Matches *int `json:"matches,omitempty"`

	// FormattedTime is a display convenience ("MM:SS.ss") added by the
	// service. Ignored by the client.
	FormattedTime string `json:"formatted_time,omitempty"`
}

// LeaderboardResponse is the body of the leaderboard endpoint.
type LeaderboardResponse struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard"`
}

// RemoteGameStat is one full session row of GET /api/stats/player/{name}.
type RemoteGameStat struct {
	ID              int64   `json:"id"`
	PlayerName      string  `json:"player_name"`
	Difficulty      string  `json:"difficulty"`
	StartTime       float64 `json:"start_time"`
	EndTime         float64 `json:"end_time"`
	DurationSeconds float64 `json:"duration_seconds"`
	Moves           int     `json:"moves"`
	Matches         int     `json:"matches"`
	Errors          int     `json:"errors"`
	Completed       bool    `json:"completed"`
}

// PlayerStatsResponse is the body of the player endpoint. Aggregate fields
// are optional: the client recomputes what it needs from Stats.
type PlayerStatsResponse struct {
	Player         string           `json:"player"`
	Stats          []RemoteGameStat `json:"stats"`
	TotalGames     int              `json:"total_games,omitempty"`
	CompletedGames int              `json:"completed_games,omitempty"`
}

// CountResponse is the body of GET /api/stats/count.
type CountResponse struct {
	Count int `json:"count"`
}
