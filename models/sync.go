package models

import "time"

// Identifiable is implemented by every server-assigned reference entity.
// Reconciliation keys entities by the returned identifier.
type Identifiable interface {
	EntityID() int64
}

// EntityKind names a synchronised reference collection.
type EntityKind string

const (
	KindShelters EntityKind = "shelters"
	KindMissions EntityKind = "missions"
)

// SyncRecord describes the last accepted fetch of one collection.
// LastSyncTimestamp is empty when the collection has never been synced.
type SyncRecord struct {
	Kind              EntityKind `json:"kind"`
	LastSyncTimestamp string     `json:"lastSyncTimestamp,omitempty"`
}

// Synced reports whether the collection has been accepted at least once.
func (r SyncRecord) Synced() bool {
	return r.LastSyncTimestamp != ""
}

// SyncResult is the outcome of one collection sync.
type SyncResult struct {
	Kind     EntityKind `json:"kind"`
	Accepted bool       `json:"accepted"`
	Count    int        `json:"count"`
	Dropped  int        `json:"dropped"`
	Error    string     `json:"error,omitempty"`
}

// SyncReport summarises a sync round.
type SyncReport struct {
	Online    bool         `json:"online"`
	StartedAt time.Time    `json:"startedAt"`
	Results   []SyncResult `json:"results,omitempty"`
}

// ConnectivityState is the result of the latest health probe.
// A zero CheckedAt means no probe has run yet.
type ConnectivityState struct {
	Online    bool      `json:"online"`
	CheckedAt time.Time `json:"checkedAt"`
}
