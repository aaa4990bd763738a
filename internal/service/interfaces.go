package service

import (
	"context"

	"github.com/MKhiriev/go-relief-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// SyncCoordinator refreshes one reference collection from the server.
// There is one coordinator per [models.EntityKind].
type SyncCoordinator interface {
	// Kind returns the collection this coordinator owns.
	Kind() models.EntityKind

	// Sync fetches the collection, reconciles it with the cache, persists
	// the result and then the sync timestamp. It never reports failure to
	// the caller: a failed fetch or a rejected/malformed payload is logged
	// and leaves cache and timestamp untouched. Concurrent calls are allowed
	// and resolve last-write-wins.
	Sync(ctx context.Context)

	// LastSyncTimestamp returns the persisted time of the last accepted
	// sync as an RFC 3339 string, or "" if the collection was never synced.
	LastSyncTimestamp(ctx context.Context) (string, error)
}

// ReferenceSyncService runs sync rounds over every reference collection.
type ReferenceSyncService interface {
	// SyncAll probes connectivity and, when online, syncs shelters and then
	// missions. It returns what happened for display; it never fails.
	SyncAll(ctx context.Context) models.SyncReport

	// Coordinator returns the coordinator of kind, or nil.
	Coordinator(kind models.EntityKind) SyncCoordinator

	// LastSyncTimestamp returns the time of the last accepted sync of any
	// collection, or "".
	LastSyncTimestamp(ctx context.Context) (string, error)
}

// ConnectivityService classifies the server as reachable or not.
type ConnectivityService interface {
	// Online probes the health endpoint once and records the result.
	Online(ctx context.Context) bool

	// LastKnown returns the result of the most recent probe without probing.
	LastKnown() models.ConnectivityState
}

// RegionPicker is a presentation surface able to ask the user for a region.
type RegionPicker interface {
	// ShowRegionPicker asks the surface to display the choices. It must not
	// block; the choice comes back through [RegionFlow.Select].
	ShowRegionPicker(regions []models.Region)

	// DismissRegionPicker tells the surface the pending prompt is over,
	// either resolved elsewhere or abandoned.
	DismissRegionPicker()
}

// Notifier delivers user-visible notices. It must not block.
type Notifier interface {
	Notify(notice models.Notice)
}

// TokenSource yields the device push token issued by the platform's push
// subsystem. An empty token with a nil error means none is available yet.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// RegionFlow owns the single "current region" and the rendezvous between
// callers that need a region and the picker that supplies one.
//
// At most one prompt is outstanding. Further prompting calls queue behind
// it in arrival order; a queued [RegionFlow.GetOrPromptRegion] re-reads
// the store when its turn comes and returns without prompting if the
// earlier prompt already stored a region.
type RegionFlow interface {
	// GetOrPromptRegion returns the persisted region without prompting when
	// there is one. Otherwise it shows every attached picker and blocks
	// until [RegionFlow.Select] resolves the prompt. With no picker
	// attached it returns [models.RegionUndefined] immediately.
	GetOrPromptRegion(ctx context.Context) (models.Region, error)

	// ForcePrompt prompts even when a region is already persisted.
	ForcePrompt(ctx context.Context) (models.Region, error)

	// Select persists region and then resolves the pending prompt.
	// Returns [ErrNoPendingSelection] when nothing is waiting,
	// [ErrInvalidRegion] for values outside the region set and
	// [ErrRegionNotSaved] when the store write fails, in which case the
	// prompt stays open.
	Select(ctx context.Context, region models.Region) error

	// Pending reports whether a prompt is outstanding.
	Pending() bool

	// CurrentRegion reads the persisted region, or [models.RegionUndefined].
	CurrentRegion(ctx context.Context) (models.Region, error)

	// AttachPicker registers a presentation surface and returns a function
	// that detaches it. Detaching the last picker while a prompt is pending
	// resolves it with [models.RegionUndefined].
	AttachPicker(picker RegionPicker) (detach func())
}

// RegistrationService binds the device push token to the current region.
// Every call makes at most one attempt and reports failures as notices.
type RegistrationService interface {
	// RegisterToken registers token for region. The undefined region is
	// never sent; the user is told to pick one instead.
	RegisterToken(ctx context.Context, token string, region models.Region) error

	// RegisterDevice obtains the token, caches it, gets or prompts for the
	// region and registers. Used at startup.
	RegisterDevice(ctx context.Context) error

	// ChangeRegion forces a prompt and registers the cached token for the
	// chosen region.
	ChangeRegion(ctx context.Context) (models.Region, error)

	// RefreshToken caches a re-issued token and registers it for the
	// current region.
	RefreshToken(ctx context.Context, token string) error

	// CurrentToken returns the cached device token, or "".
	CurrentToken(ctx context.Context) (string, error)
}

// ShelterService reads the cached shelters.
type ShelterService interface {
	All(ctx context.Context) ([]models.Shelter, error)
}

// MissionService reads cached missions and requests completions.
type MissionService interface {
	// Active returns cached missions that are not rescued, in server order.
	Active(ctx context.Context) ([]models.Mission, error)

	// Complete asks the server to mark mission id done for the current
	// volunteer and, on success, re-syncs missions.
	Complete(ctx context.Context, id int64) error
}

// ChatService reads and posts messages of the current region room.
type ChatService interface {
	// Messages returns the room of the current region, oldest first.
	Messages(ctx context.Context) ([]models.ChatMessage, error)

	// Send posts text as the current volunteer.
	Send(ctx context.Context, text string) error
}

// AlertService broadcasts emergency notifications.
type AlertService interface {
	// SendSOS pushes an SOS notification to every device in the current region.
	SendSOS(ctx context.Context) error
}

// ProfileService manages the volunteer name shown in chat and on missions.
type ProfileService interface {
	UserName(ctx context.Context) (string, error)
	SetUserName(ctx context.Context, name string) error
}
