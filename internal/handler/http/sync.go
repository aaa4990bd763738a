package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-relief-sync/internal/app"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/utils"
	"github.com/MKhiriev/go-relief-sync/internal/validators"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getShelters(w http.ResponseWriter, r *http.Request) {
	shelters, err := h.services.Shelters.All(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getShelters").Msg("error reading shelters")
		utils.WriteError(w, app.MsgErrorReadingShelters, statusFromError(err))
		return
	}

	utils.WriteJSON(w, shelters, http.StatusOK)
}

func (h *Handler) getMissions(w http.ResponseWriter, r *http.Request) {
	missions, err := h.services.Missions.Active(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getMissions").Msg("error reading missions")
		utils.WriteError(w, app.MsgErrorReadingMissions, statusFromError(err))
		return
	}

	utils.WriteJSON(w, missions, http.StatusOK)
}

// syncNow runs a sync round in the request; failures are reported through
// notices and the log, never as an error status.
func (h *Handler) syncNow(w http.ResponseWriter, r *http.Request) {
	report := h.services.SyncService.SyncAll(r.Context())

	logger.FromRequest(r).Info().
		Str("func", "*Handler.syncNow").
		Bool("online", report.Online).
		Int("collections", len(report.Results)).
		Msg("sync requested by bridge")

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) completeMission(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err == nil {
		err = h.validator.Validate(r.Context(), validators.MissionID(id))
	}
	if err != nil {
		log.Warn().Str("func", "*Handler.completeMission").Str("id", chi.URLParam(r, "id")).Msg("invalid mission id")
		utils.WriteError(w, errInvalidMissionID.Error(), http.StatusBadRequest)
		return
	}

	if err = h.services.Missions.Complete(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.completeMission").Int64("mission_id", id).Msg("error completing mission")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
