package http

import (
	"net/http"

	"github.com/MKhiriev/go-relief-sync/internal/app"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/utils"
	"github.com/MKhiriev/go-relief-sync/models"
)

func (h *Handler) getChat(w http.ResponseWriter, r *http.Request) {
	messages, err := h.services.Chat.Messages(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getChat").Msg("error reading chat")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	if messages == nil {
		messages = []models.ChatMessage{}
	}
	utils.WriteJSON(w, messages, http.StatusOK)
}

func (h *Handler) postChat(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ChatPostRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.postChat").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err := h.validator.Validate(r.Context(), req); err != nil {
		log.Warn().Err(err).Str("func", "*Handler.postChat").Msg("invalid chat message")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.services.Chat.Send(r.Context(), req.Message); err != nil {
		log.Err(err).Str("func", "*Handler.postChat").Msg("error sending chat message")
		utils.WriteError(w, err.Error(), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
