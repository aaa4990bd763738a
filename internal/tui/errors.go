// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-relief-sync/internal/adapter"
	"github.com/MKhiriev/go-relief-sync/internal/service"
)

// humanizeError turns service and adapter errors into status-line text.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case adapter.IsTransient(err):
		return "No network or server unavailable"
	case errors.Is(err, adapter.ErrUnauthorized):
		return "Server refused the request"
	case errors.Is(err, service.ErrRegionUndefined):
		return service.NoticeRegionUndefined
	case errors.Is(err, service.ErrUserNameRequired):
		return "Set your name first (u)"
	case errors.Is(err, service.ErrDeviceTokenMissing):
		return "No device token available"
	}
	return err.Error()
}
