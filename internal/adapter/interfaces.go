// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

// Package adapter provides transport-layer abstractions for communicating with
// the remote statistics server.
//
// The primary abstraction is [RemoteStats], which decouples the service layer
// from the underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPRemoteStats]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes and
// transport failures by mapHTTPError and classifyTransportError so that
// callers can use [errors.Is] for transport-agnostic error handling (e.g.
// [ErrServerError] for retriable 5xx responses, [ErrRejected] for permanent
// 4xx rejections).
package adapter

import (
	"context"

	"github.com/akarpov/memstats/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/remote_stats_mock.go -package=mock

// RemoteStats defines transport-agnostic communication with the statistics
// server. Implementations are responsible for serialisation, cache-defeating
// request decoration, and mapping transport-level errors to the sentinel
// values defined in this package.
type RemoteStats interface {
	// Probe performs a cheap reachability check against the server root.
	// It returns true only when the server answers with a success status
	// within the probe timeout. Probe never returns an error: any failure
	// simply means the server is treated as offline.
	Probe(ctx context.Context) bool

	// Save submits a finished game session to the server. On success it
	// returns the server-assigned row id. A 409 response means the server
	// already holds this session; it is reported as duplicate=true with a
	// nil error, since the data is safely stored either way. All other
	// failures are classified into the package sentinel errors.
	Save(ctx context.Context, req models.SaveStatsRequest) (serverID int64, duplicate bool, err error)

	// FetchLeaderboard retrieves up to limit best results for the given
	// difficulty. Pass "all" to fetch across every difficulty. Entries
	// arrive pre-sorted by the server (fastest first).
	FetchLeaderboard(ctx context.Context, difficulty string, limit int) ([]models.LeaderboardEntry, error)

	// FetchPlayer retrieves the full session history the server holds for
	// the named player, newest first.
	FetchPlayer(ctx context.Context, playerName string) (models.PlayerStatsResponse, error)

	// FetchCount returns the total number of game records stored on the
	// server. Used for server-reset detection.
	FetchCount(ctx context.Context) (int, error)
}
