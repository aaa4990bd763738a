package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/store"
	"github.com/MKhiriev/go-relief-sync/models"
)

type referenceSyncService struct {
	connectivity ConnectivityService
	runners      []syncRunner
	prefs        *store.Preferences

	logger *logger.Logger
}

// NewReferenceSyncService returns a [ReferenceSyncService] that runs the
// given coordinators in order. Coordinators built by this package report
// per-collection results; others are run blind.
func NewReferenceSyncService(
	connectivity ConnectivityService,
	prefs *store.Preferences,
	log *logger.Logger,
	coordinators ...SyncCoordinator,
) ReferenceSyncService {
	runners := make([]syncRunner, 0, len(coordinators))
	for _, c := range coordinators {
		r, ok := c.(syncRunner)
		if !ok {
			r = blindRunner{c}
		}
		runners = append(runners, r)
	}

	return &referenceSyncService{
		connectivity: connectivity,
		runners:      runners,
		prefs:        prefs,
		logger:       log,
	}
}

func (s *referenceSyncService) SyncAll(ctx context.Context) models.SyncReport {
	report := models.SyncReport{StartedAt: time.Now()}

	if !s.connectivity.Online(ctx) {
		s.logger.Info().Str("func", "*referenceSyncService.SyncAll").Msg("offline, sync round skipped")
		return report
	}
	report.Online = true

	for _, r := range s.runners {
		if ctx.Err() != nil {
			break
		}
		report.Results = append(report.Results, r.run(ctx))
	}

	s.logger.Debug().
		Str("func", "*referenceSyncService.SyncAll").
		Dur("elapsed", time.Since(report.StartedAt)).
		Msg("sync round finished")
	return report
}

func (s *referenceSyncService) Coordinator(kind models.EntityKind) SyncCoordinator {
	for _, r := range s.runners {
		if r.Kind() == kind {
			return r
		}
	}
	return nil
}

func (s *referenceSyncService) LastSyncTimestamp(ctx context.Context) (string, error) {
	return s.prefs.LastSyncTimestamp(ctx)
}

type blindRunner struct {
	SyncCoordinator
}

func (b blindRunner) run(ctx context.Context) models.SyncResult {
	b.Sync(ctx)
	return models.SyncResult{Kind: b.Kind()}
}
