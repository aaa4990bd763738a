// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the merged view of every configuration source.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds device identity settings.
	App App `envPrefix:"APP_"`

	// Storage holds the local key-value store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the relief API connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds background sync settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// Bridge holds the local presentation bridge settings.
	Bridge Bridge `envPrefix:"BRIDGE_"`

	// UI selects the presentation surface.
	UI UI `envPrefix:"UI_"`

	// FilePath is the optional JSON or YAML config file.
	// Env: CONFIG, flags: -c / -config.
	FilePath string `env:"CONFIG"`
}

// App holds device identity settings.
type App struct {
	// DeviceToken is a push token supplied by the host platform. When empty
	// the token cached in the store is used.
	// Env: APP_DEVICE_TOKEN
	DeviceToken string `env:"DEVICE_TOKEN"`

	// UserName seeds the stored volunteer name on first start.
	// Env: APP_USER_NAME
	UserName string `env:"USER_NAME"`
}

// Storage groups the storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite key-value store location.
type DB struct {
	// DSN is the SQLite file path, or "memory" for a process-local store.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the relief API connection settings.
type Adapter struct {
	// HTTPAddress is the API base URL, e.g. "https://relief.example.org".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// APIKey is sent as a bearer credential on every outbound call.
	// Env: ADAPTER_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout is the client-side deadline for a single call.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds background sync settings.
type Workers struct {
	// SyncInterval is the period of the reference sync round.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Bridge holds the local HTTP bridge settings. The bridge is disabled when
// HTTPAddress is empty.
type Bridge struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: BRIDGE_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// TokenSignKey enables bearer JWT auth on the bridge when set.
	// Env: BRIDGE_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim.
	// Env: BRIDGE_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`
}

// UI selects the presentation surface.
type UI struct {
	// Headless disables the terminal dashboard.
	// Env: UI_HEADLESS
	Headless bool `env:"HEADLESS"`
}

const (
	defaultRequestTimeout = 5 * time.Second
	defaultSyncInterval   = 5 * time.Minute
	defaultDSN            = "relief.db"
	defaultTokenIssuer    = "relief-bridge"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: defaultDSN}},
		Adapter: Adapter{RequestTimeout: defaultRequestTimeout},
		Workers: Workers{SyncInterval: defaultSyncInterval},
		Bridge:  Bridge{TokenIssuer: defaultTokenIssuer},
	}
}

// GetStructuredConfig merges flags, environment, the optional config file
// and defaults into a single [StructuredConfig].
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv().
		withFile().
		withDefaults().
		build()
}
