package store

import (
	"context"

	"github.com/akarpov/memstats/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LeaderboardFilter narrows a leaderboard query. Zero-valued fields are not
// applied: an empty Difficulty spans all difficulties and an empty Source
// spans both origins. Limit must be positive.
type LeaderboardFilter struct {
	Difficulty string
	Source     models.Source
	Limit      int
}

// GameRecordRepository is the low-level local statistics repository backed
// by the client's SQLite database.
type GameRecordRepository interface {
	// Insert persists a record, recomputing derived fields first, and
	// returns the assigned local id.
	Insert(ctx context.Context, record models.GameRecord) (int64, error)

	// AttachServerID stamps the server-assigned id onto an existing local
	// row once the remote service has accepted it. Content fields are
	// never updated in place.
	AttachServerID(ctx context.Context, localID, serverID int64) error

	// QueryByPlayer returns the player's sessions ordered newest-first.
	// A non-empty source restricts to rows of that origin.
	QueryByPlayer(ctx context.Context, playerName string, source models.Source) ([]models.GameRecord, error)

	// QueryLeaderboard returns completed sessions ordered by duration
	// ascending, errors ascending.
	QueryLeaderboard(ctx context.Context, filter LeaderboardFilter) ([]models.GameRecord, error)

	// ReplaceServerRows atomically swaps the server-origin rows of the
	// given difficulty (all difficulties when empty) for the supplied set.
	ReplaceServerRows(ctx context.Context, difficulty string, records []models.GameRecord) error

	// DeleteAll clears the whole local cache.
	DeleteAll(ctx context.Context) error

	// Count reports the total number of stored records.
	Count(ctx context.Context) (int, error)
}
