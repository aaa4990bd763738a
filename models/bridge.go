package models

// BridgeStatus is the dashboard summary served to an embedding shell.
type BridgeStatus struct {
	Region        Region `json:"region"`
	PendingPrompt bool   `json:"pendingPrompt"`
	Online        bool   `json:"online"`
	LastSync      string `json:"lastSync,omitempty"`
	Shelters      int    `json:"shelters"`
	Missions      int    `json:"missions"`
	Version       string `json:"version,omitempty"`
}

// RegionState describes the current region and whether a picker is open.
type RegionState struct {
	Region  Region   `json:"region"`
	Pending bool     `json:"pending"`
	Regions []Region `json:"regions"`
}

type RegionSelectionRequest struct {
	Region string `json:"region"`
}

type ChatPostRequest struct {
	Message string `json:"message"`
}

type ProfileRequest struct {
	UserName string `json:"userName"`
}

type ProfileResponse struct {
	UserName string `json:"userName"`
	Token    string `json:"tokenFingerprint,omitempty"`
}
