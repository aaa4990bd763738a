package models

// MissionStatus is the server-assigned state of a volunteer mission.
// The set is open: statuses unknown to this client are stored verbatim.
type MissionStatus string

const (
	MissionPending   MissionStatus = "pending"
	MissionCompleted MissionStatus = "completed"
	MissionRescued   MissionStatus = "rescued"
)

// Mission is a volunteer task published by the relief server.
//
// Status transitions are server-authoritative: the client may only request
// one (see MissionDoneRequest) and learns the result on the next sync.
type Mission struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Points      int64         `json:"points"`
	Status      MissionStatus `json:"status"`
}

// EntityID implements [Identifiable].
func (m Mission) EntityID() int64 {
	return m.ID
}

// Open reports whether the mission is still shown to volunteers.
// Rescued missions are hidden; every other status stays visible.
func (m Mission) Open() bool {
	return m.Status != MissionRescued
}
