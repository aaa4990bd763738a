package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-relief-sync/internal/app"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/utils"
	"github.com/MKhiriev/go-relief-sync/models"
)

func (h *Handler) getRegion(w http.ResponseWriter, r *http.Request) {
	region, err := h.services.Regions.CurrentRegion(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getRegion").Msg("error reading region")
		utils.WriteError(w, app.MsgErrorReadingRegion, statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.RegionState{
		Region:  region,
		Pending: h.services.Regions.Pending(),
		Regions: models.Regions,
	}, http.StatusOK)
}

// selectRegion answers the pending region prompt.
func (h *Handler) selectRegion(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegionSelectionRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.selectRegion").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.selectRegion").Str("region", req.Region).Msg("invalid region selection")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.Regions.Select(r.Context(), models.Region(req.Region)); err != nil {
		log.Err(err).Str("func", "*Handler.selectRegion").Str("region", req.Region).Msg("region was not selected")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// changeRegion opens a forced prompt and re-registers once it is answered.
// The prompt outlives the request, so it runs detached from its context.
func (h *Handler) changeRegion(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())
	log := logger.FromRequest(r)

	go func() {
		region, err := h.services.Registration.ChangeRegion(ctx)
		if err != nil {
			log.Err(err).Str("func", "*Handler.changeRegion").Msg("region change failed")
			return
		}
		log.Info().Str("func", "*Handler.changeRegion").Str("region", region.String()).Msg("region changed")
	}()

	event := log.Info().Str("func", "*Handler.changeRegion")
	if sessionID, ok := utils.GetSessionIDFromContext(r.Context()); ok {
		event = event.Str("session", sessionID)
	}
	event.Msg(app.MsgRegionChangeAccepted)

	w.WriteHeader(http.StatusAccepted)
}
