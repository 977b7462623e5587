package workers

import (
	"context"
	"testing"
	"time"

	"github.com/akarpov/memstats/internal/logger"
	"github.com/akarpov/memstats/models"
)

// stubStats counts RefreshAll calls through a channel so tests can wait for
// the scheduler to fire without sleeping blindly.
type stubStats struct {
	refreshed chan struct{}
}

func (s *stubStats) RecordGameEnd(context.Context, models.GameRecord) (int64, error) {
	return 0, nil
}

func (s *stubStats) GetLeaderboard(context.Context, string, int) ([]models.GameRecord, error) {
	return nil, nil
}

func (s *stubStats) GetPlayerStats(context.Context, string) (models.PlayerStatsResult, error) {
	return models.PlayerStatsResult{}, nil
}

func (s *stubStats) RefreshAll(context.Context) error {
	select {
	case s.refreshed <- struct{}{}:
	default:
	}
	return nil
}

func (s *stubStats) Counts(context.Context) (int, int, error)        { return 0, 0, nil }
func (s *stubStats) DetectServerReset(context.Context) (bool, error) { return false, nil }
func (s *stubStats) ResetLocalCache(context.Context) error           { return nil }
func (s *stubStats) UsingCachedData() bool                           { return false }

func TestRefreshWorker_RunsPeriodically(t *testing.T) {
	stats := &stubStats{refreshed: make(chan struct{}, 1)}
	worker := NewRefreshWorker(stats, 10*time.Millisecond, logger.Nop())

	worker.Run()
	defer worker.Stop()

	select {
	case <-stats.refreshed:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh job never fired")
	}
}

func TestRefreshWorker_StopWithoutRun(t *testing.T) {
	worker := NewRefreshWorker(&stubStats{refreshed: make(chan struct{}, 1)}, time.Minute, logger.Nop())

	// must not panic
	worker.Stop()
}

func TestRefreshWorker_DefaultInterval(t *testing.T) {
	worker := NewRefreshWorker(&stubStats{}, 0, logger.Nop())

	if worker.interval != DefaultRefreshInterval {
		t.Errorf("expected default interval %v, got %v", DefaultRefreshInterval, worker.interval)
	}
}
