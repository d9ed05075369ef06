package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is reported by the "version" command.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the NFT backend.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
	// Token is sent in the backend token header when non-empty.
	Token string
	// DetailCacheSize is the LRU capacity for NFT detail records.
	DetailCacheSize int
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientOwner names the synchronized sets.
type ClientOwner struct {
	ProfileID string
	CartID    string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// ResyncInterval defines how often synchronizers are replaced with the
	// server's authoritative sets.
	ResyncInterval time.Duration
	// FetchConcurrency caps parallel detail fetches; zero is unbounded.
	FetchConcurrency int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the backend address, timeout and token.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Owner contains the profile and cart identifiers.
	Owner ClientOwner
	// Workers contains background job settings.
	Workers ClientWorkers
	// Args is the command line left after flag parsing.
	Args []string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HTTPAddress:     cfg.Adapter.HTTPAddress,
			RequestTimeout:  cfg.Adapter.RequestTimeout,
			Token:           cfg.App.Token,
			DetailCacheSize: cfg.Adapter.DetailCacheSize,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.ClientDB.DSN,
			},
		},
		Owner: ClientOwner{
			ProfileID: cfg.Owner.ProfileID,
			CartID:    cfg.Owner.CartID,
		},
		Workers: ClientWorkers{
			ResyncInterval:   cfg.Workers.ResyncInterval,
			FetchConcurrency: cfg.Workers.FetchConcurrency,
		},
		Args: cfg.Args,
	}

	return clientCfg, clientCfg.validate()
}
