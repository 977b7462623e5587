package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/akarpov/memstats/internal/adapter"
	"github.com/akarpov/memstats/internal/store"
	"github.com/akarpov/memstats/models"
)

func TestGetLeaderboard_OfflineServesTaggedCache(t *testing.T) {
	svc, records, remote := newTestService(t)

	remote.EXPECT().Probe(gomock.Any()).Return(false)
	records.EXPECT().
		QueryLeaderboard(gomock.Any(), store.LeaderboardFilter{Difficulty: "Easy", Source: models.SourceLocal, Limit: 5}).
		Return([]models.GameRecord{localRecord("Ana", 42.5, 2)}, nil)

	got, err := svc.GetLeaderboard(context.Background(), "Easy", 5)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, models.SourceLocal, got[0].Source)
	assert.True(t, got[0].Cached)
	assert.Equal(t, "server offline", got[0].CachedReason)
	assert.True(t, svc.UsingCachedData())
}

func TestGetLeaderboard_OfflineExcludesServerRows(t *testing.T) {
	svc, records, remote := newTestService(t)

	remote.EXPECT().Probe(gomock.Any()).Return(false)
	records.EXPECT().
		QueryLeaderboard(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter store.LeaderboardFilter) ([]models.GameRecord, error) {
			// rows cached by an earlier refresh must not leak into an
			// offline leaderboard
			assert.Equal(t, models.SourceLocal, filter.Source)
			return nil, nil
		})

	_, err := svc.GetLeaderboard(context.Background(), "Easy", 5)

	require.NoError(t, err)
}

func TestGetLeaderboard_OnlineServesRemote(t *testing.T) {
	svc, _, remote := newTestService(t)

	matches := 8
	remote.EXPECT().Probe(gomock.Any()).Return(true)
	remote.EXPECT().
		FetchLeaderboard(gomock.Any(), "Easy", 5).
		Return([]models.LeaderboardEntry{
			{ID: 77, PlayerName: "Ana", Difficulty: "Easy", DurationSeconds: 42.5, Errors: 2, Matches: &matches},
		}, nil)

	got, err := svc.GetLeaderboard(context.Background(), "Easy", 5)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(77), got[0].ServerID)
	assert.Equal(t, models.SourceServer, got[0].Source)
	assert.False(t, got[0].Cached)
	assert.False(t, svc.UsingCachedData())
}

func TestGetLeaderboard_FetchFailureFallsBack(t *testing.T) {
	svc, records, remote := newTestService(t)

	remote.EXPECT().Probe(gomock.Any()).Return(true)
	remote.EXPECT().
		FetchLeaderboard(gomock.Any(), "Easy", 5).
		Return(nil, adapter.ErrServerError)
	records.EXPECT().
		QueryLeaderboard(gomock.Any(), gomock.Any()).
		Return([]models.GameRecord{localRecord("Ana", 42.5, 2)}, nil)

	got, err := svc.GetLeaderboard(context.Background(), "Easy", 5)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Cached)
	assert.Equal(t, "server error", got[0].CachedReason)
}

func TestGetLeaderboard_LocalFailureIsAnError(t *testing.T) {
	svc, records, remote := newTestService(t)

	remote.EXPECT().Probe(gomock.Any()).Return(false)
	records.EXPECT().
		QueryLeaderboard(gomock.Any(), gomock.Any()).
		Return(nil, store.ErrExecutingQuery)

	_, err := svc.GetLeaderboard(context.Background(), "Easy", 5)

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestGetPlayerStats_OfflineUsesCache(t *testing.T) {
	svc, records, remote := newTestService(t)

	records.EXPECT().
		QueryByPlayer(gomock.Any(), "Ana", models.SourceLocal).
		Return([]models.GameRecord{localRecord("Ana", 42.5, 2)}, nil)
	remote.EXPECT().Probe(gomock.Any()).Return(false)

	got, err := svc.GetPlayerStats(context.Background(), "Ana")

	require.NoError(t, err)
	assert.True(t, got.UsingCached)
	assert.Equal(t, "server offline", got.Error)
	require.Len(t, got.Stats, 1)
	assert.True(t, got.Stats[0].Cached)
	assert.Empty(t, got.LocalOnlyStats)
}

func TestGetPlayerStats_MergesAndSeparatesUnsynced(t *testing.T) {
	svc, records, remote := newTestService(t)

	// synced row shares the server id; the second local row is unconfirmed
	synced := localRecord("Ana", 42.5, 2)
	synced.ServerID = 77
	unsynced := localRecord("Ana", 51, 0)

	records.EXPECT().
		QueryByPlayer(gomock.Any(), "Ana", models.SourceLocal).
		Return([]models.GameRecord{synced, unsynced}, nil)
	remote.EXPECT().Probe(gomock.Any()).Return(true)
	remote.EXPECT().
		FetchPlayer(gomock.Any(), "Ana").
		Return(models.PlayerStatsResponse{
			Player: "Ana",
			Stats: []models.RemoteGameStat{
				{ID: 77, PlayerName: "Ana", Difficulty: "Easy", StartTime: 1000, EndTime: 1042.5, DurationSeconds: 42.5, Moves: 10, Matches: 8, Errors: 2, Completed: true},
			},
		}, nil)

	got, err := svc.GetPlayerStats(context.Background(), "Ana")

	require.NoError(t, err)
	assert.False(t, got.UsingCached)

	// the synced game appears once, as the server copy
	require.Len(t, got.Stats, 2)
	assert.Equal(t, models.SourceServer, got.Stats[0].Source)
	assert.Equal(t, int64(77), got.Stats[0].ServerID)
	assert.Equal(t, models.SourceLocal, got.Stats[1].Source)

	require.Len(t, got.LocalOnlyStats, 1)
	assert.InDelta(t, 51.0, got.LocalOnlyStats[0].DurationSeconds, 1e-9)
}

func TestGetPlayerStats_OfflineDeduplicatesLocalRows(t *testing.T) {
	svc, records, remote := newTestService(t)

	// two local rows sharing the content identity key collapse to one
	records.EXPECT().
		QueryByPlayer(gomock.Any(), "Ana", models.SourceLocal).
		Return([]models.GameRecord{
			localRecord("Ana", 42.5, 2),
			localRecord("Ana", 42.5, 2),
			localRecord("Ana", 51, 0),
		}, nil)
	remote.EXPECT().Probe(gomock.Any()).Return(false)

	got, err := svc.GetPlayerStats(context.Background(), "Ana")

	require.NoError(t, err)
	require.Len(t, got.Stats, 2)
	assert.True(t, got.Stats[0].Cached)
	assert.True(t, got.Stats[1].Cached)
}

func TestGetPlayerStats_LocalOnlyListIsDeduplicated(t *testing.T) {
	svc, records, remote := newTestService(t)

	records.EXPECT().
		QueryByPlayer(gomock.Any(), "Ana", models.SourceLocal).
		Return([]models.GameRecord{
			localRecord("Ana", 51, 0),
			localRecord("Ana", 51, 0),
		}, nil)
	remote.EXPECT().Probe(gomock.Any()).Return(true)
	remote.EXPECT().
		FetchPlayer(gomock.Any(), "Ana").
		Return(models.PlayerStatsResponse{Player: "Ana"}, nil)

	got, err := svc.GetPlayerStats(context.Background(), "Ana")

	require.NoError(t, err)
	assert.Len(t, got.LocalOnlyStats, 1)
	assert.Len(t, got.Stats, 1)
}

func TestGetPlayerStats_BlankNameDefaults(t *testing.T) {
	svc, records, remote := newTestService(t)

	records.EXPECT().
		QueryByPlayer(gomock.Any(), models.DefaultPlayerName, models.SourceLocal).
		Return(nil, nil)
	remote.EXPECT().Probe(gomock.Any()).Return(false)

	got, err := svc.GetPlayerStats(context.Background(), "")

	require.NoError(t, err)
	assert.Equal(t, models.DefaultPlayerName, got.Player)
}
