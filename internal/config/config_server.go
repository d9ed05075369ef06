package config

import (
	"fmt"
	"time"
)

// ServerConfig is the development backend's view of [StructuredConfig].
type ServerConfig struct {
	// Token is required in the X-Practicum-Mobile-Token header of every
	// API request when non-empty.
	Token string
	// Version is exposed by GET /api/v1/version.
	Version string
	// DSN is the PostgreSQL connection string.
	DSN string
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds every inbound request.
	RequestTimeout time.Duration
}

// GetServerConfig builds and validates the server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		Token:          cfg.App.Token,
		Version:        cfg.App.Version,
		DSN:            cfg.Storage.DB.DSN,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
	}

	return serverCfg, serverCfg.validate()
}
