package models

// RegisterTokenRequest binds a push token to a region on the server.
type RegisterTokenRequest struct {
	Token  string `json:"token"`
	Region Region `json:"region"`
}

// MissionDoneRequest asks the server to mark a mission as done by a volunteer.
type MissionDoneRequest struct {
	ID       int64  `json:"id"`
	UserName string `json:"userName"`
	Token    string `json:"token"`
}

// SendMessageRequest posts a chat message to the sender's region room.
type SendMessageRequest struct {
	Token    string `json:"token"`
	UserName string `json:"userName"`
	Message  string `json:"message"`
}

// RegionNotificationRequest broadcasts a push notification to every device
// registered in Region.
type RegionNotificationRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Region Region `json:"region"`
}
