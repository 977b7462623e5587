// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

// Package service implements the local-first statistics engine: every game
// result is written to the local SQLite cache first, then pushed to the
// remote stats service on a best-effort basis. Reads prefer live server data
// and fall back to the cache when the server cannot answer.
package service

import (
	"context"

	"github.com/akarpov/memstats/models"
)

// ClientStatsService is the public surface of the statistics engine. All
// methods are safe for concurrent use.
type ClientStatsService interface {
	// RecordGameEnd persists a finished game session locally and pushes it
	// to the remote service with retry. The local insert is the only fatal
	// step: a push failure after a successful insert is logged and swallowed,
	// and the local row id is still returned. A 409 duplicate answer from
	// the server counts as a successful push.
	RecordGameEnd(ctx context.Context, record models.GameRecord) (localID int64, err error)

	// GetLeaderboard returns up to limit best completed results for the
	// given difficulty (empty difficulty means all). Server data is
	// preferred; on any server failure the local cache is returned instead,
	// with each record tagged Cached=true and a CachedReason explaining the
	// degradation. The error return is reserved for local store failures.
	GetLeaderboard(ctx context.Context, difficulty string, limit int) ([]models.GameRecord, error)

	// GetPlayerStats returns the combined view of a player's sessions:
	// server-side history merged with local rows the server does not have
	// yet. Offline, the result is built from the local cache alone and
	// flagged UsingCached.
	GetPlayerStats(ctx context.Context, playerName string) (models.PlayerStatsResult, error)

	// RefreshAll rebuilds the server-originated portion of the local cache
	// from the remote leaderboards, one difficulty at a time. Rows that
	// cannot be fully reconstructed from leaderboard data are synthesized
	// and marked as such. Locally recorded rows are never touched.
	RefreshAll(ctx context.Context) error

	// Counts reports the local cache size next to the server's total
	// record count. Requires the server to be reachable.
	Counts(ctx context.Context) (localCount, serverCount int, err error)

	// DetectServerReset compares the server's total record count against
	// the local cache size. It reports true when the server holds far fewer
	// records than the cache, which indicates the server database was
	// wiped and the cache is stale.
	DetectServerReset(ctx context.Context) (bool, error)

	// ResetLocalCache removes every record from the local cache, both
	// server-originated and locally recorded rows.
	ResetLocalCache(ctx context.Context) error

	// UsingCachedData reports whether the most recent read was served from
	// the local cache instead of the server.
	UsingCachedData() bool
}
