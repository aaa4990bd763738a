package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-relief-sync/internal/config"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientStorages_Memory(t *testing.T) {
	s, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: MemoryDSN}}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	_, ok := s.KV.(*MemoryStore)
	assert.True(t, ok)
	assert.Equal(t, KeyShelters, s.Shelters.Key())
	assert.Equal(t, KeyMissions, s.Missions.Key())
}

func TestNewClientStorages_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "nested", "relief.db")

	s, err := NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, s.Preferences.SetRegion(ctx, models.RegionMetro))
	require.NoError(t, s.Shelters.Save(ctx, []models.Shelter{{ID: 1, Name: "Gym"}}))
	require.NoError(t, s.Shelters.Save(ctx, []models.Shelter{{ID: 2, Name: "School"}}))
	require.NoError(t, s.Close())

	// reopen: values persist across processes
	s, err = NewClientStorages(ctx, config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	r, err := s.Preferences.Region(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RegionMetro, r)

	shelters, err := s.Shelters.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Shelter{{ID: 2, Name: "School"}}, shelters)

	require.NoError(t, s.KV.Delete(ctx, KeyRegion))
	r, err = s.Preferences.Region(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.RegionUndefined, r)
}
