package models

// Shelter is an emergency shelter published by the relief server.
// Shelters are immutable once fetched; every accepted sync replaces the
// whole cached collection.
type Shelter struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`

	// Longitude and Latitude are kept as the server sends them (decimal
	// strings) so that the cached copy is byte-for-byte the server payload.
	Longitude string `json:"longitude"`
	Latitude  string `json:"latitude"`
}

// EntityID implements [Identifiable].
func (s Shelter) EntityID() int64 {
	return s.ID
}
