package handler

import (
	"github.com/MKhiriev/go-relief-sync/internal/config"
	"github.com/MKhiriev/go-relief-sync/internal/handler/http"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/service"
	"github.com/MKhiriev/go-relief-sync/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the presentation handlers enabled by cfg. The bridge
// is the only one today; a disabled bridge yields errNoHandlersAreCreated.
func NewHandlers(services *service.ClientServices, cfg config.ClientBridge, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if !cfg.Enabled() {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, buildInfo, logger.Component("bridge")),
	}, nil
}
