// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/akarpov/memstats/internal/adapter"
	"github.com/akarpov/memstats/internal/logger"
	"github.com/akarpov/memstats/internal/store"
	"github.com/akarpov/memstats/models"
)

// Degradation reasons attached to cache-served records.
const (
	reasonServerOffline = "server offline"
	reasonServerError   = "server error"
	reasonRequestFailed = "request failed"
)

func (s *statsService) GetLeaderboard(ctx context.Context, difficulty string, limit int) ([]models.GameRecord, error) {
	log := logger.FromContext(ctx)

	if !s.ensureOnline(ctx) {
		return s.localLeaderboard(ctx, difficulty, limit, reasonServerOffline)
	}

	entries, err := s.remote.FetchLeaderboard(ctx, difficulty, limit)
	if err != nil {
		log.Warn().Err(err).
			Str("difficulty", difficulty).
			Msg("leaderboard fetch failed, falling back to local cache")
		return s.localLeaderboard(ctx, difficulty, limit, reasonForError(err))
	}

	s.setUsingCached(false)

	return leaderboardToRecords(entries), nil
}

func (s *statsService) GetPlayerStats(ctx context.Context, playerName string) (models.PlayerStatsResult, error) {
	log := logger.FromContext(ctx)

	if playerName == "" {
		playerName = models.DefaultPlayerName
	}

	local, err := s.records.QueryByPlayer(ctx, playerName, models.SourceLocal)
	if err != nil {
		return models.PlayerStatsResult{}, fmt.Errorf("query local player records: %w", err)
	}

	if !s.ensureOnline(ctx) {
		return s.cachedPlayerStats(playerName, local, reasonServerOffline), nil
	}

	resp, err := s.remote.FetchPlayer(ctx, playerName)
	if err != nil {
		log.Warn().Err(err).
			Str("player_name", playerName).
			Msg("player stats fetch failed, falling back to local cache")
		return s.cachedPlayerStats(playerName, local, reasonForError(err)), nil
	}

	serverRecords := remoteStatsToRecords(resp.Stats)

	seen := make(map[string]struct{}, len(serverRecords))
	for _, record := range serverRecords {
		seen[record.IdentityKey()] = struct{}{}
	}
	var localOnly []models.GameRecord
	for _, record := range local {
		if _, ok := seen[record.IdentityKey()]; !ok {
			localOnly = append(localOnly, record)
		}
	}

	s.setUsingCached(false)

	return models.PlayerStatsResult{
		Player:         playerName,
		Stats:          MergeRecords(serverRecords, local),
		LocalOnlyStats: MergeRecords(localOnly, nil),
	}, nil
}

func (s *statsService) localLeaderboard(ctx context.Context, difficulty string, limit int, reason string) ([]models.GameRecord, error) {
	// never mix stale server-tagged rows into an offline answer
	records, err := s.records.QueryLeaderboard(ctx, store.LeaderboardFilter{
		Difficulty: difficulty,
		Source:     models.SourceLocal,
		Limit:      limit,
	})
	if err != nil {
		return nil, fmt.Errorf("query local leaderboard: %w", err)
	}

	for i := range records {
		records[i].Cached = true
		records[i].CachedReason = reason
	}

	s.setUsingCached(true)

	return records, nil
}

func (s *statsService) cachedPlayerStats(playerName string, local []models.GameRecord, reason string) models.PlayerStatsResult {
	merged := MergeRecords(local, nil)
	for i := range merged {
		merged[i].Cached = true
		merged[i].CachedReason = reason
	}

	s.setUsingCached(true)

	return models.PlayerStatsResult{
		Player:      playerName,
		Stats:       merged,
		UsingCached: true,
		Error:       reason,
	}
}

func reasonForError(err error) string {
	switch {
	case errors.Is(err, adapter.ErrServerUnreachable), errors.Is(err, adapter.ErrTimeout):
		return reasonServerOffline
	case errors.Is(err, adapter.ErrServerError):
		return reasonServerError
	default:
		return reasonRequestFailed
	}
}

func leaderboardToRecords(entries []models.LeaderboardEntry) []models.GameRecord {
	records := make([]models.GameRecord, 0, len(entries))
	for _, entry := range entries {
		record := models.GameRecord{
			ServerID:        entry.ID,
			PlayerName:      entry.PlayerName,
			Difficulty:      entry.Difficulty,
			DurationSeconds: entry.DurationSeconds,
			Errors:          entry.Errors,
			Completed:       true,
			Source:          models.SourceServer,
		}
		if entry.Matches != nil {
			record.Matches = *entry.Matches
		}
		records = append(records, record)
	}
	return records
}

func remoteStatsToRecords(stats []models.RemoteGameStat) []models.GameRecord {
	records := make([]models.GameRecord, 0, len(stats))
	for _, stat := range stats {
		records = append(records, models.GameRecord{
			ServerID:        stat.ID,
			PlayerName:      stat.PlayerName,
			Difficulty:      stat.Difficulty,
			StartTime:       stat.StartTime,
			EndTime:         stat.EndTime,
			DurationSeconds: stat.DurationSeconds,
			Moves:           stat.Moves,
			Matches:         stat.Matches,
			Errors:          stat.Errors,
			Completed:       stat.Completed,
			Source:          models.SourceServer,
		})
	}
	return records
}
