package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-relief-sync/internal/adapter"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/models"
)

type connectivityService struct {
	adapter adapter.ServerAdapter

	mu    sync.RWMutex
	state models.ConnectivityState

	logger *logger.Logger
}

func NewConnectivityService(a adapter.ServerAdapter, log *logger.Logger) ConnectivityService {
	return &connectivityService{adapter: a, logger: log}
}

func (c *connectivityService) Online(ctx context.Context) bool {
	err := c.adapter.Health(ctx)
	online := err == nil

	c.mu.Lock()
	changed := c.state.CheckedAt.IsZero() || c.state.Online != online
	c.state = models.ConnectivityState{Online: online, CheckedAt: time.Now()}
	c.mu.Unlock()

	if changed {
		c.logger.Info().Err(err).Bool("online", online).Msg("connectivity changed")
	}
	return online
}

func (c *connectivityService) LastKnown() models.ConnectivityState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}
