package workers

import (
	"github.com/akarpov/memstats/internal/config"
	"github.com/akarpov/memstats/internal/logger"
	"github.com/akarpov/memstats/internal/service"
)

type Workers struct {
	workers []Worker
}

func NewWorkers(stats service.ClientStatsService, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewRefreshWorker(stats, cfg.RefreshInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
