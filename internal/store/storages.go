package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-relief-sync/internal/config"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/models"
)

// MemoryDSN selects [MemoryStore] instead of SQLite.
const MemoryDSN = "memory"

// ClientStorages groups the store and its typed views.
type ClientStorages struct {
	KV          KeyValueStore
	Preferences *Preferences
	Shelters    *Collection[models.Shelter]
	Missions    *Collection[models.Mission]

	db *DB
}

// NewClientStorages opens the configured backend and builds the typed views.
// For SQLite the file is created if needed and migrations are applied.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Str("dsn", cfg.DB.DSN).Msg("creating new storages...")

	if cfg.DB.DSN == MemoryDSN {
		return NewStoragesFromKV(NewMemoryStore()), nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	s := NewStoragesFromKV(NewSQLiteStore(db, log))
	s.db = db
	return s, nil
}

// NewStoragesFromKV builds the typed views over an existing store.
func NewStoragesFromKV(kv KeyValueStore) *ClientStorages {
	return &ClientStorages{
		KV:          kv,
		Preferences: NewPreferences(kv),
		Shelters:    NewCollection[models.Shelter](kv, CollectionKey(models.KindShelters)),
		Missions:    NewCollection[models.Mission](kv, CollectionKey(models.KindMissions)),
	}
}

// Close releases the database connection, if any.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
