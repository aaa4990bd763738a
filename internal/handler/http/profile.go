package http

import (
	"net/http"

	"github.com/MKhiriev/go-relief-sync/internal/app"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/utils"
	"github.com/MKhiriev/go-relief-sync/models"
)

func (h *Handler) sendSOS(w http.ResponseWriter, r *http.Request) {
	if err := h.services.Alerts.SendSOS(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.sendSOS").Msg("error sending SOS")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	name, err := h.services.Profile.UserName(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProfile").Msg("error reading user name")
		utils.WriteError(w, app.MsgErrorReadingProfile, statusFromError(err))
		return
	}
	token, err := h.services.Registration.CurrentToken(ctx)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getProfile").Msg("error reading device token")
	}

	utils.WriteJSON(w, models.ProfileResponse{UserName: name, Token: utils.Fingerprint(token)}, http.StatusOK)
}

func (h *Handler) putProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ProfileRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.putProfile").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.putProfile").Msg("invalid profile")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.Profile.SetUserName(r.Context(), req.UserName); err != nil {
		log.Err(err).Str("func", "*Handler.putProfile").Msg("error saving user name")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getNotices(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.surface.Drain(), http.StatusOK)
}
