package config

import "errors"

// Validation errors returned by [ClientConfig] validation.
var (
	// ErrInvalidAdapterConfigs indicates a missing or malformed API address
	// or a non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidWorkerConfigs indicates a non-positive sync interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidBridgeConfigs indicates a malformed bridge address or a
	// sign key without an issuer.
	ErrInvalidBridgeConfigs = errors.New("invalid bridge configuration")
)
