package models

import "time"

// Notice is a user-visible message raised by a foreground action
// (registration, chat send, mission completion, SOS, region pick).
type Notice struct {
	Title string    `json:"title"`
	Body  string    `json:"body"`
	At    time.Time `json:"at"`
}
