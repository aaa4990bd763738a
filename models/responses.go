package models

import "encoding/json"

// Envelope is the common response wrapper of the relief API.
// Message is optional and usually only present on failures.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SheltersResponse is returned by GET /api/getShelters.
//
// Shelters is kept raw so that an absent or non-array field can be told
// apart from an empty collection before decoding.
type SheltersResponse struct {
	Envelope
	Shelters json.RawMessage `json:"shelters"`
}

// MissionsResponse is returned by GET /api/getAllMissions.
type MissionsResponse struct {
	Envelope
	Missions json.RawMessage `json:"missions"`
}

// ChatRowsResponse is returned by GET /chat/{region}. Rows arrive newest-first.
type ChatRowsResponse struct {
	Rows json.RawMessage `json:"rows"`
}
