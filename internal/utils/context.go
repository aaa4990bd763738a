// Package utils provides small helpers shared by the client packages:
// typed context keys, JSON response writing, the resty client wrapper,
// bridge JWT handling, token fingerprints and id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, preventing collisions
// with string keys set by other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var (
	// SessionIDCtxKey holds the bridge session id taken from a verified JWT subject.
	SessionIDCtxKey = contextKey("sessionID")
	// TraceIDCtxKey holds the trace id assigned to a bridge request.
	TraceIDCtxKey = contextKey("traceID")
)

// GetSessionIDFromContext returns the bridge session id stored in ctx.
// ok is false when the value is missing, empty or of the wrong type.
func GetSessionIDFromContext(ctx context.Context) (string, bool) {
	sessionID, ok := ctx.Value(SessionIDCtxKey).(string)
	return sessionID, ok && sessionID != ""
}

// GetTraceIDFromContext returns the trace id stored in ctx, or "".
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
