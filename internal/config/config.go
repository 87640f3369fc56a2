// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// registry service. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token verification settings, the version and the log level.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listen address and timeouts.
	Server Server `envPrefix:"SERVER_"`

	// Search configures the client of the external full-text search service.
	Search Search `envPrefix:"SEARCH_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the HMAC secret bearer tokens are verified with.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer, when set, must match the "iss" claim of every token.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	LogLevel string `env:"LOG_LEVEL"`
}

// Server holds network address and timeout settings for the HTTP server.
type Server struct {
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of one request, including every
	// query issued while resolving it.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// DB holds the PostgreSQL connection settings.
type DB struct {
	DSN          string `env:"DATABASE_URI"`
	MaxOpenConns int    `env:"MAX_OPEN_CONNS"`
	MaxIdleConns int    `env:"MAX_IDLE_CONNS"`
}

// Search configures the search subsystem client and its circuit breaker.
type Search struct {
	// Address is the base URL of the search service. An empty address
	// disables search selections.
	Address string `env:"ADDRESS"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// BreakerMaxFailures is the number of consecutive failures that open
	// the breaker.
	BreakerMaxFailures uint32 `env:"BREAKER_MAX_FAILURES"`

	// BreakerOpenTimeout is how long the breaker stays open before letting
	// a probe request through.
	BreakerOpenTimeout time.Duration `env:"BREAKER_OPEN_TIMEOUT"`
}

// GetStructuredConfig loads, merges and validates the configuration.
// Environment variables take precedence over flags, and flags over the JSON
// file; unset fields fall back to [defaults].
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: "info",
		},
		Storage: Storage{
			DB: DB{
				MaxOpenConns: 20,
				MaxIdleConns: 5,
			},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Search: Search{
			RequestTimeout:     10 * time.Second,
			BreakerMaxFailures: 5,
			BreakerOpenTimeout: 30 * time.Second,
		},
	}
}
