package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-relief-sync/models"
)

// Preferences exposes the scalar keys of the store with typed accessors.
// Absent keys are reported as zero values, not errors.
type Preferences struct {
	kv KeyValueStore
}

func NewPreferences(kv KeyValueStore) *Preferences {
	return &Preferences{kv: kv}
}

// Region returns the persisted region, or [models.RegionUndefined].
func (p *Preferences) Region(ctx context.Context) (models.Region, error) {
	raw, err := p.getRaw(ctx, KeyRegion)
	if err != nil || raw == "" {
		return models.RegionUndefined, err
	}
	return models.Region(raw), nil
}

func (p *Preferences) SetRegion(ctx context.Context, region models.Region) error {
	return p.kv.Set(ctx, KeyRegion, string(region))
}

func (p *Preferences) UserName(ctx context.Context) (string, error) {
	return p.getRaw(ctx, KeyUserName)
}

func (p *Preferences) SetUserName(ctx context.Context, name string) error {
	return p.kv.Set(ctx, KeyUserName, name)
}

func (p *Preferences) DeviceToken(ctx context.Context) (string, error) {
	return p.getRaw(ctx, KeyDeviceToken)
}

func (p *Preferences) SetDeviceToken(ctx context.Context, token string) error {
	return p.kv.Set(ctx, KeyDeviceToken, token)
}

// SyncTimestamp returns the last accepted sync time of kind, "" if never.
func (p *Preferences) SyncTimestamp(ctx context.Context, kind models.EntityKind) (string, error) {
	return p.getTimestamp(ctx, SyncTimestampKey(kind))
}

// LastSyncTimestamp returns the time of the last accepted sync of any kind.
func (p *Preferences) LastSyncTimestamp(ctx context.Context) (string, error) {
	return p.getTimestamp(ctx, KeySyncTimestamp)
}

// MarkSynced records at as the sync time of kind, then as the global sync
// time. Callers must only invoke it after the collection write succeeded.
func (p *Preferences) MarkSynced(ctx context.Context, kind models.EntityKind, at time.Time) error {
	ts, err := json.Marshal(at.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingValue, err)
	}

	if err := p.kv.Set(ctx, SyncTimestampKey(kind), string(ts)); err != nil {
		return fmt.Errorf("save %s timestamp: %w", kind, err)
	}
	if err := p.kv.Set(ctx, KeySyncTimestamp, string(ts)); err != nil {
		return fmt.Errorf("save global timestamp: %w", err)
	}
	return nil
}

func (p *Preferences) getRaw(ctx context.Context, key string) (string, error) {
	raw, err := p.kv.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", key, err)
	}
	return raw, nil
}

func (p *Preferences) getTimestamp(ctx context.Context, key string) (string, error) {
	raw, err := p.getRaw(ctx, key)
	if err != nil || raw == "" {
		return "", err
	}

	var ts string
	if err := json.Unmarshal([]byte(raw), &ts); err != nil {
		return "", fmt.Errorf("read %s: %w: %w", key, ErrDecodingValue, err)
	}
	return ts, nil
}
