package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-relief-sync/internal/adapter"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/store"
	"github.com/MKhiriev/go-relief-sync/models"
)

// fetchFunc fetches the authoritative collection of one kind.
type fetchFunc[T models.Identifiable] func(ctx context.Context) ([]T, error)

// entitySyncer is the [SyncCoordinator] of one collection. It holds no
// lock: each write replaces the whole collection, so concurrent runs are
// last-write-wins.
type entitySyncer[T models.Identifiable] struct {
	kind  models.EntityKind
	fetch fetchFunc[T]
	cache *store.Collection[T]
	prefs *store.Preferences
	now   func() time.Time

	logger *logger.Logger
}

func newEntitySyncer[T models.Identifiable](
	kind models.EntityKind,
	fetch fetchFunc[T],
	cache *store.Collection[T],
	prefs *store.Preferences,
	log *logger.Logger,
) *entitySyncer[T] {
	return &entitySyncer[T]{
		kind:   kind,
		fetch:  fetch,
		cache:  cache,
		prefs:  prefs,
		now:    time.Now,
		logger: log,
	}
}

// NewShelterSync returns the coordinator of the shelter collection.
func NewShelterSync(a adapter.ServerAdapter, storages *store.ClientStorages, log *logger.Logger) SyncCoordinator {
	return newEntitySyncer(models.KindShelters, a.FetchShelters, storages.Shelters, storages.Preferences, log)
}

// NewMissionSync returns the coordinator of the mission collection.
func NewMissionSync(a adapter.ServerAdapter, storages *store.ClientStorages, log *logger.Logger) SyncCoordinator {
	return newEntitySyncer(models.KindMissions, a.FetchMissions, storages.Missions, storages.Preferences, log)
}

func (s *entitySyncer[T]) Kind() models.EntityKind {
	return s.kind
}

func (s *entitySyncer[T]) Sync(ctx context.Context) {
	_ = s.run(ctx)
}

func (s *entitySyncer[T]) LastSyncTimestamp(ctx context.Context) (string, error) {
	return s.prefs.SyncTimestamp(ctx, s.kind)
}

// run performs fetch, reconcile, persist collection, persist timestamp,
// strictly in that order. Any failure stops the sequence, so the timestamp
// only moves after the collection write succeeded.
func (s *entitySyncer[T]) run(ctx context.Context) models.SyncResult {
	result := models.SyncResult{Kind: s.kind}
	log := s.logger.With().Str("kind", string(s.kind)).Logger()

	remote, err := s.fetch(ctx)
	if err != nil {
		event := log.Warn()
		if adapter.IsTransient(err) {
			event = log.Info()
		}
		event.Err(err).Str("func", "*entitySyncer.run").Msg("fetch failed, keeping cached collection")
		result.Error = err.Error()
		return result
	}

	local, err := s.cache.Load(ctx)
	if err != nil {
		// the cache is replaced wholesale, an unreadable one is simply overwritten
		log.Warn().Err(err).Str("func", "*entitySyncer.run").Msg("cached collection unreadable")
		local = nil
	}

	reconciled := Reconcile(remote, local)

	if err = s.cache.Save(ctx, reconciled.Merged); err != nil {
		log.Error().Err(err).Str("func", "*entitySyncer.run").Msg("error saving collection")
		result.Error = err.Error()
		return result
	}

	if err = s.prefs.MarkSynced(ctx, s.kind, s.now()); err != nil {
		log.Error().Err(err).Str("func", "*entitySyncer.run").Msg("error saving sync timestamp")
		result.Error = err.Error()
		return result
	}

	log.Info().
		Str("func", "*entitySyncer.run").
		Int("count", len(reconciled.Merged)).
		Ints64("dropped", reconciled.Dropped).
		Msg("collection synced")

	result.Accepted = true
	result.Count = len(reconciled.Merged)
	result.Dropped = len(reconciled.Dropped)
	return result
}

// syncRunner exposes the outcome of a run to the sync round.
type syncRunner interface {
	SyncCoordinator
	run(ctx context.Context) models.SyncResult
}
