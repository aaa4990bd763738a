// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer message strings written
// into bridge response bodies and log entries.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "invalid JSON was passed"

	MsgErrorReadingRegion   = "error reading region"
	MsgErrorReadingShelters = "error reading shelters"
	MsgErrorReadingMissions = "error reading missions"
	MsgErrorReadingProfile  = "error reading profile"

	// MsgRegionChangeAccepted is logged when a forced region prompt is
	// opened on behalf of a bridge client.
	MsgRegionChangeAccepted = "region change accepted"
)
