// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] is usable at
// startup. It runs after defaults were applied.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.MaxOpenConns < 0 || cfg.Storage.DB.MaxIdleConns < 0 {
		return fmt.Errorf("%w: negative pool size", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Search.Address != "" {
		u, err := url.Parse(cfg.Search.Address)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%w: search address must be an absolute URL", ErrInvalidSearchConfigs)
		}
		if cfg.Search.RequestTimeout <= 0 || cfg.Search.BreakerMaxFailures == 0 {
			return ErrInvalidSearchConfigs
		}
	}

	return nil
}
