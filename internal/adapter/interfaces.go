// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the relief REST API.
//
// [ServerAdapter] hides the transport from the service layer. The HTTP
// implementation enforces a client-side deadline on every call, never
// retries, and reports failures with the sentinel errors in errors.go so
// callers can tell a timeout from a dropped connection, a non-2xx status,
// a rejected request or a malformed payload with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-relief-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines the calls the client makes to the relief server.
// Every method issues exactly one request.
type ServerAdapter interface {
	// FetchShelters returns the authoritative shelter list from
	// GET /api/getShelters. The envelope must carry success:true and a
	// "shelters" array, otherwise [ErrRejected] or [ErrDecode] is returned.
	FetchShelters(ctx context.Context) ([]models.Shelter, error)

	// FetchMissions returns the authoritative mission list from
	// GET /api/getAllMissions, validated like FetchShelters.
	FetchMissions(ctx context.Context) ([]models.Mission, error)

	// RegisterToken binds a push token to a region with
	// POST /api/registerToken. Only success:true counts as success.
	RegisterToken(ctx context.Context, req models.RegisterTokenRequest) error

	// SetMissionDone requests a mission status transition with
	// POST /api/setMissionDone. The server decides the resulting status.
	SetMissionDone(ctx context.Context, req models.MissionDoneRequest) error

	// ChatMessages returns the messages of a region room, oldest first.
	ChatMessages(ctx context.Context, region models.Region) ([]models.ChatMessage, error)

	// SendChatMessage posts a message with POST /chat/.
	SendChatMessage(ctx context.Context, req models.SendMessageRequest) error

	// SendRegionNotification asks the server to push a notification to all
	// devices registered in a region.
	SendRegionNotification(ctx context.Context, req models.RegionNotificationRequest) error

	// Health probes GET /health. A nil error means the server is reachable.
	Health(ctx context.Context) error
}
