// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package service

import (
	"context"
	"fmt"

	"github.com/akarpov/memstats/internal/logger"
)

// Reset heuristic thresholds. A server wipe is suspected only when the
// server holds less than half of what the cache holds and the absolute
// server count is tiny. Both are policy constants, not proofs.
const (
	resetCountRatio = 0.5
	resetCountFloor = 10
)

func (s *statsService) Counts(ctx context.Context) (int, int, error) {
	if !s.ensureOnline(ctx) {
		return 0, 0, ErrServerOffline
	}

	localCount, err := s.records.Count(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("count local records: %w", err)
	}

	serverCount, err := s.remote.FetchCount(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("fetch server count: %w", err)
	}

	return localCount, serverCount, nil
}

func (s *statsService) DetectServerReset(ctx context.Context) (bool, error) {
	log := logger.FromContext(ctx)

	localCount, serverCount, err := s.Counts(ctx)
	if err != nil {
		return false, err
	}

	reset := float64(serverCount) < float64(localCount)*resetCountRatio &&
		serverCount < resetCountFloor

	if reset {
		log.Warn().
			Int("local_count", localCount).
			Int("server_count", serverCount).
			Msg("server appears to have been reset, local cache is stale")
	}

	return reset, nil
}

func (s *statsService) ResetLocalCache(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if err := s.records.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear local cache: %w", err)
	}

	s.setUsingCached(false)
	log.Info().Msg("local statistics cache cleared")

	return nil
}
