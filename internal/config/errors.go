package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unsupported in-memory client DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidOwnerConfigs indicates an empty profile or cart id.
	ErrInvalidOwnerConfigs = errors.New("invalid owner configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero resync interval).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
