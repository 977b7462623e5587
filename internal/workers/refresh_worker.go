// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexey Karpov

package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/akarpov/memstats/internal/logger"
	"github.com/akarpov/memstats/internal/service"
)

// DefaultRefreshInterval is used when the configured interval is zero or
// negative.
const DefaultRefreshInterval = 5 * time.Minute

// RefreshWorker periodically rebuilds the cached server rows so that the
// local leaderboard fallback stays close to server truth even when the next
// read happens offline.
type RefreshWorker struct {
	stats    service.ClientStatsService
	interval time.Duration
	logger   *logger.Logger

	mu        sync.Mutex
	scheduler gocron.Scheduler
}

func NewRefreshWorker(stats service.ClientStatsService, interval time.Duration, logger *logger.Logger) *RefreshWorker {
	if interval <= 0 {
		interval = DefaultRefreshInterval
	}

	return &RefreshWorker{
		stats:    stats,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the periodic refresh schedule. Calling Run on an already
// running worker restarts it.
func (w *RefreshWorker) Run() {
	w.Stop()

	w.mu.Lock()
	defer w.mu.Unlock()

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		w.logger.Error().Err(err).Msg("failed to create refresh scheduler")
		return
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(w.interval),
		gocron.NewTask(w.refresh),
	)
	if err != nil {
		w.logger.Error().Err(err).Msg("failed to schedule cache refresh job")
		return
	}

	scheduler.Start()
	w.scheduler = scheduler

	w.logger.Info().
		Dur("interval", w.interval).
		Msg("cache refresh worker started")
}

// Stop shuts the schedule down and waits for a running refresh to finish.
// Safe to call on a worker that was never started.
func (w *RefreshWorker) Stop() {
	w.mu.Lock()
	scheduler := w.scheduler
	w.scheduler = nil
	w.mu.Unlock()

	if scheduler == nil {
		return
	}
	if err := scheduler.Shutdown(); err != nil {
		w.logger.Warn().Err(err).Msg("refresh scheduler shutdown error")
	}
}

func (w *RefreshWorker) refresh() {
	ctx := w.logger.WithContext(context.Background())

	if err := w.stats.RefreshAll(ctx); err != nil {
		if errors.Is(err, service.ErrServerOffline) {
			w.logger.Debug().Msg("refresh skipped, server offline")
			return
		}
		w.logger.Warn().Err(err).Msg("periodic cache refresh failed")
		return
	}

	w.logger.Debug().Msg("periodic cache refresh completed")
}
