package http

import (
	"net/http"

	"github.com/MKhiriev/go-relief-sync/internal/app"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/utils"
	"github.com/MKhiriev/go-relief-sync/models"
)

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	region, err := h.services.Regions.CurrentRegion(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getStatus").Msg("error reading region")
		utils.WriteError(w, app.MsgErrorReadingRegion, statusFromError(err))
		return
	}

	lastSync, err := h.services.SyncService.LastSyncTimestamp(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getStatus").Msg("error reading sync timestamp")
	}

	shelters, err := h.services.Shelters.All(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getStatus").Msg("error reading shelters")
	}
	missions, err := h.services.Missions.Active(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getStatus").Msg("error reading missions")
	}

	utils.WriteJSON(w, models.BridgeStatus{
		Region:        region,
		PendingPrompt: h.services.Regions.Pending(),
		Online:        h.services.Connectivity.LastKnown().Online,
		LastSync:      lastSync,
		Shelters:      len(shelters),
		Missions:      len(missions),
		Version:       h.buildInfo.Version(),
	}, http.StatusOK)
}
