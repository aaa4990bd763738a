package tui

import "github.com/MKhiriev/go-relief-sync/models"

type dashboardLoadedMsg struct {
	region   models.Region
	lastSync string
	online   bool
	shelters []models.Shelter
	missions []models.Mission
	err      error
}

type syncDoneMsg struct {
	report models.SyncReport
}

// regionPromptMsg and regionDismissMsg are sent by the region flow.
type regionPromptMsg struct {
	regions []models.Region
}

type regionDismissMsg struct{}

type regionSelectedMsg struct {
	err error
}

type regionChangedMsg struct {
	region models.Region
	err    error
}

type noticeMsg struct {
	notice models.Notice
}

type actionDoneMsg struct {
	status     string
	err        error
	reload     bool
	reloadChat bool
}

type clearStatusMsg struct{}

type chatLoadedMsg struct {
	messages []models.ChatMessage
	err      error
}
