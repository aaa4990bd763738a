package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-relief-sync/internal/adapter"
	"github.com/MKhiriev/go-relief-sync/internal/service"
	"github.com/MKhiriev/go-relief-sync/internal/store"
)

// errorStatusMap is checked in order; the first match wins.
var errorStatusMap = []struct {
	target error
	status int
}{
	{service.ErrInvalidRegion, http.StatusBadRequest},
	{service.ErrEmptyMessage, http.StatusBadRequest},
	{service.ErrUserNameRequired, http.StatusBadRequest},
	{errInvalidMissionID, http.StatusBadRequest},
	{service.ErrNoPendingSelection, http.StatusConflict},
	{service.ErrRegionUndefined, http.StatusConflict},
	{service.ErrDeviceTokenMissing, http.StatusConflict},
	{service.ErrMissionNotFound, http.StatusNotFound},
	{service.ErrRegionNotSaved, http.StatusInternalServerError},

	{adapter.ErrTimeout, http.StatusGatewayTimeout},
	{adapter.ErrNetwork, http.StatusBadGateway},
	{adapter.ErrRejected, http.StatusBadGateway},
	{adapter.ErrDecode, http.StatusBadGateway},
	{adapter.ErrHTTPStatus, http.StatusBadGateway},

	{store.ErrDecodingValue, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
