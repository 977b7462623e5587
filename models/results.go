// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package models

// PlayerStatsResult is the engine's answer to a player-stats query. Stats is
// the primary list: remote data when the service was reachable, otherwise
// the local fallback. LocalOnlyStats holds client records the service has
// not confirmed yet, surfaced alongside remote data so the player sees
// their newest unsynced games.
type PlayerStatsResult struct {
	Player         string       `json:"player"`
	Stats          []GameRecord `json:"stats"`
	LocalOnlyStats []GameRecord `json:"local_only_stats,omitempty"`

	// UsingCached is true when Stats was served from the local store.
	UsingCached bool `json:"using_cached"`

	// Error carries a human-readable reason when the remote path failed.
	// The query itself still succeeds with fallback data.
	Error string `json:"error,omitempty"`
}
