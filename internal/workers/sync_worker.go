package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/service"
	"github.com/MKhiriev/go-relief-sync/models"
)

// DefaultSyncInterval is used when the configured interval is not positive.
const DefaultSyncInterval = 5 * time.Minute

// SyncWorker runs a sync round immediately on Start and then on every tick.
type SyncWorker struct {
	syncService service.ReferenceSyncService
	interval    time.Duration

	// OnReport, when set before Start, receives every round's report.
	OnReport func(models.SyncReport)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

func NewSyncWorker(syncService service.ReferenceSyncService, interval time.Duration, log *logger.Logger) *SyncWorker {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}
	return &SyncWorker{
		syncService: syncService,
		interval:    interval,
		logger:      log,
	}
}

// Start stops any previously running loop, then launches a new one. The
// loop exits when ctx is cancelled or Stop is called.
func (w *SyncWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().Dur("interval", w.interval).Msg("sync worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		w.round(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.round(jobCtx)
			}
		}
	}()
}

// Stop cancels the loop and blocks until it has fully exited. Safe to call
// when the worker is not running.
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *SyncWorker) round(ctx context.Context) {
	report := w.syncService.SyncAll(ctx)
	if w.OnReport != nil && ctx.Err() == nil {
		w.OnReport(report)
	}
}
