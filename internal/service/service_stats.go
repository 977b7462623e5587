// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/akarpov/memstats/internal/adapter"
	"github.com/akarpov/memstats/internal/logger"
	"github.com/akarpov/memstats/internal/store"
	"github.com/akarpov/memstats/models"
)

// StatsConfig carries the sync engine tunables plus the client identity sent
// with every save request.
type StatsConfig struct {
	ClientID       string
	RetryAttempts  int
	RetryBaseDelay time.Duration
	SaveTimeout    time.Duration
	TimeoutStep    time.Duration
	ProbeTTL       time.Duration
	RefreshLimit   int
}

type statsService struct {
	records store.GameRecordRepository
	remote  adapter.RemoteStats
	cfg     StatsConfig
	logger  *logger.Logger

	mu          sync.Mutex
	online      bool
	lastProbe   time.Time
	usingCached bool
}

func NewStatsService(records store.GameRecordRepository, remote adapter.RemoteStats, cfg StatsConfig, logger *logger.Logger) ClientStatsService {
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 5
	}
	if cfg.RetryBaseDelay <= 0 {
		cfg.RetryBaseDelay = time.Second
	}
	if cfg.SaveTimeout <= 0 {
		cfg.SaveTimeout = 10 * time.Second
	}
	if cfg.TimeoutStep < 0 {
		cfg.TimeoutStep = 0
	}
	if cfg.RefreshLimit <= 0 {
		cfg.RefreshLimit = 100
	}

	return &statsService{
		records: records,
		remote:  remote,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *statsService) RecordGameEnd(ctx context.Context, record models.GameRecord) (int64, error) {
	log := logger.FromContext(ctx)

	record.Source = models.SourceLocal
	if record.PlayerName == "" {
		record.PlayerName = models.DefaultPlayerName
	}
	localID, err := s.records.Insert(ctx, record)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrLocalSave, err)
	}
	record.ComputeDerived()

	if !s.ensureOnline(ctx) {
		log.Info().
			Int64("local_id", localID).
			Msg("server offline, game saved locally only")
		return localID, nil
	}

	serverID, duplicate, err := s.pushWithRetry(ctx, models.SaveStatsRequest{
		ClientID:        s.cfg.ClientID,
		PlayerName:      record.PlayerName,
		Difficulty:      record.Difficulty,
		StartTime:       record.StartTime,
		EndTime:         record.EndTime,
		DurationSeconds: record.DurationSeconds,
		Moves:           record.Moves,
		Matches:         record.Matches,
		Errors:          record.Errors,
		Completed:       record.Completed,
		LocalID:         localID,
	})
	if err != nil {
		// push failure is not fatal: the record is safe locally and the
		// next full refresh reconciles server state
		s.markOffline()
		log.Warn().Err(err).
			Int64("local_id", localID).
			Msg("failed to push game to server, kept locally")
		return localID, nil
	}

	if serverID > 0 {
		if attachErr := s.records.AttachServerID(ctx, localID, serverID); attachErr != nil {
			log.Warn().Err(attachErr).
				Int64("local_id", localID).
				Int64("server_id", serverID).
				Msg("failed to attach server id, row stays unconfirmed")
		}
	}

	log.Info().
		Int64("local_id", localID).
		Int64("server_id", serverID).
		Bool("duplicate", duplicate).
		Msg("game pushed to server")

	return localID, nil
}

// pushWithRetry submits one save request with exponential backoff. The delay
// before attempt n+1 is base * 2^(n-1), scaled by a random factor in
// [0.5, 1.0) so that simultaneous clients do not hammer a recovering server
// in lockstep. Each attempt gets a slightly longer timeout than the last.
func (s *statsService) pushWithRetry(ctx context.Context, req models.SaveStatsRequest) (int64, bool, error) {
	var (
		serverID  int64
		duplicate bool
		attempt   int
	)

	err := retry.Do(ctx, s.saveBackoff(), func(ctx context.Context) error {
		attempt++
		timeout := s.cfg.SaveTimeout + s.cfg.TimeoutStep*time.Duration(attempt-1)
		attemptCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		id, dup, saveErr := s.remote.Save(attemptCtx, req)
		if saveErr != nil {
			if isRetriable(saveErr) {
				return retry.RetryableError(saveErr)
			}
			return saveErr
		}

		serverID, duplicate = id, dup
		return nil
	})
	if err != nil {
		return 0, false, err
	}

	return serverID, duplicate, nil
}

func (s *statsService) saveBackoff() retry.Backoff {
	failures := 0
	return retry.BackoffFunc(func() (time.Duration, bool) {
		failures++
		if failures >= s.cfg.RetryAttempts {
			return 0, true
		}
		delay := s.cfg.RetryBaseDelay << (failures - 1)
		return time.Duration(float64(delay) * (0.5 + rand.Float64()*0.5)), false
	})
}

func isRetriable(err error) bool {
	return errors.Is(err, adapter.ErrServerUnreachable) ||
		errors.Is(err, adapter.ErrTimeout) ||
		errors.Is(err, adapter.ErrServerError)
}

// ensureOnline reports server reachability, probing at most once per
// ProbeTTL. A TTL of zero disables caching and probes on every call.
func (s *statsService) ensureOnline(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.ProbeTTL > 0 && !s.lastProbe.IsZero() && time.Since(s.lastProbe) < s.cfg.ProbeTTL {
		return s.online
	}

	s.online = s.remote.Probe(ctx)
	s.lastProbe = time.Now()

	return s.online
}

func (s *statsService) markOffline() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.online = false
	s.lastProbe = time.Now()
}

func (s *statsService) setUsingCached(cached bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.usingCached = cached
}

func (s *statsService) UsingCachedData() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usingCached
}
