package workers

import (
	"context"

	"github.com/MKhiriev/go-relief-sync/internal/config"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/service"
	"github.com/MKhiriev/go-relief-sync/models"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the client workers: currently the periodic sync round.
func NewWorkers(cfg config.ClientWorkers, services *service.ClientServices, log *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSyncWorker(services.SyncService, cfg.SyncInterval, log.Component("sync-worker")),
		},
	}
}

// OnSyncReport forwards every sync round's report to fn. Call before Start.
func (w *Workers) OnSyncReport(fn func(models.SyncReport)) {
	for _, worker := range w.workers {
		if sw, ok := worker.(*SyncWorker); ok {
			sw.OnReport = fn
		}
	}
}

func (w *Workers) Start(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Start(ctx)
	}
}

func (w *Workers) Stop() {
	for _, worker := range w.workers {
		worker.Stop()
	}
}
