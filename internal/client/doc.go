// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the relief client runtime.
//
// It wires configuration, the local store, the relief API adapter and the
// client services, then runs the background sync worker alongside the
// enabled presentation surfaces: the terminal UI, the local HTTP bridge,
// or both. Device registration starts once a region picker is attached.
package client
