package models

import "time"

// ChatMessage is a single entry of a region chat room.
type ChatMessage struct {
	ID       int64     `json:"id,omitempty"`
	Token    string    `json:"token"`
	UserName string    `json:"userName"`
	Message  string    `json:"message"`
	SentAt   time.Time `json:"sentAt"`
}

// Mine reports whether the message was sent from the device holding token.
func (m ChatMessage) Mine(token string) bool {
	return token != "" && m.Token == token
}
