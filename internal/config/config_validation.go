// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the invariants shared by every process: values that are
// meaningless whatever the role. Role-specific requirements live in the
// client and server views.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.DetailCacheSize < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.FetchConcurrency < 0 || cfg.Workers.ResyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Owner.ProfileID == "" || cfg.Owner.CartID == "" {
		return ErrInvalidOwnerConfigs
	}

	if cfg.Workers.ResyncInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
