// Package server runs the client's local bridge server.
//
// It owns the HTTP server lifecycle: startup on the configured address and
// graceful shutdown when the client exits.
package server
