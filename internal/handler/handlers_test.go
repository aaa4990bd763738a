package handler

import (
	"testing"

	"github.com/MKhiriev/go-relief-sync/internal/config"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/service"
	"github.com/MKhiriev/go-relief-sync/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestServices returns an empty aggregate. http.NewHandler only stores
// the pointer, so construction-time tests need no real services.
func newTestServices() *service.ClientServices {
	return &service.ClientServices{}
}

func TestNewHandlers_BridgeAddress(t *testing.T) {
	cfg := config.ClientBridge{HTTPAddress: "localhost:8090"}

	h, err := NewHandlers(newTestServices(), cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP, "expected bridge handler to be initialised")
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(newTestServices(), config.ClientBridge{}, models.NewAppBuildInfo("", "", ""), logger.Nop())

	require.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
