package store

import "github.com/MKhiriev/go-relief-sync/models"

// Persisted keys. Collections and timestamps hold JSON; region, user name
// and device token hold raw strings.
const (
	KeyShelters      = "shelters"
	KeyMissions      = "missions"
	KeySyncTimestamp = "syncTimestamp"
	KeyRegion        = "region"
	KeyUserName      = "userName"
	KeyDeviceToken   = "deviceToken"
)

// SyncTimestampKey returns the per-collection timestamp key,
// e.g. "syncTimestamp:shelters".
func SyncTimestampKey(kind models.EntityKind) string {
	return KeySyncTimestamp + ":" + string(kind)
}

// CollectionKey returns the cache key of a reference collection.
func CollectionKey(kind models.EntityKind) string {
	return string(kind)
}
