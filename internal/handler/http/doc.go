// Package http implements the local bridge API of the relief client.
//
// An embedding shell (web view, mobile host, scripts) drives the client
// through it: it reads the cached reference data, triggers sync rounds,
// answers region prompts and drains user notices. Tracing, access logging
// and optional bearer-token authentication are handled in this package
// before requests reach the service layer.
package http
