package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-relief-sync/internal/config"
	"github.com/MKhiriev/go-relief-sync/internal/logger"
	"github.com/MKhiriev/go-relief-sync/internal/mock/servicemock"
	"github.com/MKhiriev/go-relief-sync/internal/service"
	"github.com/MKhiriev/go-relief-sync/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

type serviceMocks struct {
	connectivity *servicemock.MockConnectivityService
	sync         *servicemock.MockReferenceSyncService
	regions      *servicemock.MockRegionFlow
	registration *servicemock.MockRegistrationService
	shelters     *servicemock.MockShelterService
	missions     *servicemock.MockMissionService
	chat         *servicemock.MockChatService
	alerts       *servicemock.MockAlertService
	profile      *servicemock.MockProfileService
}

func newTestHandlerWithConfig(t *testing.T, cfg config.ClientBridge) (*Handler, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		connectivity: servicemock.NewMockConnectivityService(ctrl),
		sync:         servicemock.NewMockReferenceSyncService(ctrl),
		regions:      servicemock.NewMockRegionFlow(ctrl),
		registration: servicemock.NewMockRegistrationService(ctrl),
		shelters:     servicemock.NewMockShelterService(ctrl),
		missions:     servicemock.NewMockMissionService(ctrl),
		chat:         servicemock.NewMockChatService(ctrl),
		alerts:       servicemock.NewMockAlertService(ctrl),
		profile:      servicemock.NewMockProfileService(ctrl),
	}

	services := &service.ClientServices{
		Connectivity: m.connectivity,
		SyncService:  m.sync,
		Regions:      m.regions,
		Registration: m.registration,
		Shelters:     m.shelters,
		Missions:     m.missions,
		Chat:         m.chat,
		Alerts:       m.alerts,
		Profile:      m.profile,
		Notices:      service.NewNoticeBus(logger.Nop()),
	}

	h := NewHandler(services, cfg, models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), logger.Nop())
	return h, m
}

func newTestHandler(t *testing.T) (*Handler, *serviceMocks) {
	t.Helper()
	return newTestHandlerWithConfig(t, config.ClientBridge{})
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		buf := &bytes.Buffer{}
		require.NoError(t, json.NewEncoder(buf).Encode(b))
		reader = buf
	}

	req := httptest.NewRequest(method, target, reader)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v))
	return v
}
