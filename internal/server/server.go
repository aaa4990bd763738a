package server

import (
	"context"

	"github.com/MKhiriev/go-relief-sync/internal/config"
	"github.com/MKhiriev/go-relief-sync/internal/handler"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ClientBridge, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || !cfg.Enabled() {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	s.httpServer.RunServer()
	s.logger.Info().Msg("server stopped")
}

func (s *server) Shutdown(ctx context.Context) {
	s.httpServer.Shutdown(ctx)
}
