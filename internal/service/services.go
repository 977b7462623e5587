package service

import (
	"github.com/akarpov/memstats/internal/adapter"
	"github.com/akarpov/memstats/internal/config"
	"github.com/akarpov/memstats/internal/logger"
	"github.com/akarpov/memstats/internal/store"
)

type ClientServices struct {
	Stats ClientStatsService
}

func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteStats, clientID string, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	statsSvc := NewStatsService(storages.GameRecords, remote, StatsConfig{
		ClientID:       clientID,
		RetryAttempts:  cfg.Sync.RetryAttempts,
		RetryBaseDelay: cfg.Sync.RetryBaseDelay,
		SaveTimeout:    cfg.Adapter.RequestTimeout,
		TimeoutStep:    cfg.Sync.TimeoutStep,
		ProbeTTL:       cfg.Sync.ProbeTTL,
		RefreshLimit:   cfg.Sync.RefreshLimit,
	}, logger)

	return &ClientServices{
		Stats: statsSvc,
	}
}
