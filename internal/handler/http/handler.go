package http

import (
	"github.com/MKhiriev/go-relief-sync/internal/config"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/service"
	"github.com/MKhiriev/go-relief-sync/internal/validators"
	"github.com/MKhiriev/go-relief-sync/models"
)

type Handler struct {
	services  *service.ClientServices
	cfg       config.ClientBridge
	surface   *Surface
	buildInfo models.AppBuildInfo
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, cfg config.ClientBridge, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Bool("auth", cfg.AuthEnabled()).Msg("bridge handler created")
	return &Handler{
		services:  services,
		cfg:       cfg,
		surface:   NewSurface(),
		buildInfo: buildInfo,
		validator: validators.NewBridgeRequestValidator(),
		logger:    logger,
	}
}

// Attach registers the bridge as a region picker and notice sink. The
// returned function undoes both.
func (h *Handler) Attach() (detach func()) {
	detachPicker := h.services.Regions.AttachPicker(h.surface)
	detachNotices := h.services.Notices.Attach(h.surface)
	return func() {
		detachPicker()
		detachNotices()
	}
}
