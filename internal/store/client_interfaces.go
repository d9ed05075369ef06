package store

import (
	"context"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// PreferencesRepository is the local key/value store of UI preferences.
type PreferencesRepository interface {
	// GetPreference returns the value stored under key or
	// ErrPreferenceNotFound.
	GetPreference(ctx context.Context, key string) (string, error)
	// SetPreference inserts or overwrites the value stored under key.
	SetPreference(ctx context.Context, key, value string) error
}
