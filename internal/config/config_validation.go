// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Supported values of [DB.Driver].
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// Defaults applied to zero-valued fields after all sources are merged.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultDriver          = DriverPostgres
	DefaultBcryptCost      = 10
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "info"

	DefaultRateLimitCapacity       = 10
	DefaultRateLimitRefillTokens   = 1
	DefaultRateLimitRefillInterval = 6 * time.Second
	DefaultRateLimitPrefix         = "contact-keeper:ratelimit"

	DefaultClientHTTPAddress    = "http://localhost:8080"
	DefaultClientRequestTimeout = 15 * time.Second
)

const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.BcryptCost == 0 {
		cfg.App.BcryptCost = DefaultBcryptCost
	}
	if cfg.App.LogLevel == "" {
		cfg.App.LogLevel = DefaultLogLevel
	}
	if cfg.Storage.DB.Driver == "" {
		cfg.Storage.DB.Driver = DefaultDriver
	}
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = DefaultShutdownTimeout
	}

	if !cfg.RateLimit.Enabled() {
		return
	}
	if cfg.RateLimit.Capacity == 0 {
		cfg.RateLimit.Capacity = DefaultRateLimitCapacity
	}
	if cfg.RateLimit.RefillTokens == 0 {
		cfg.RateLimit.RefillTokens = DefaultRateLimitRefillTokens
	}
	if cfg.RateLimit.RefillInterval == 0 {
		cfg.RateLimit.RefillInterval = DefaultRateLimitRefillInterval
	}
	if cfg.RateLimit.Prefix == "" {
		cfg.RateLimit.Prefix = DefaultRateLimitPrefix
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or one of the ErrInvalid*
// sentinels wrapped with a description otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost {
		return fmt.Errorf("%w: bcrypt cost must be in range %d-%d", ErrInvalidAppConfigs, minBcryptCost, maxBcryptCost)
	}
	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	if cfg.Storage.DB.Driver != DriverPostgres && cfg.Storage.DB.Driver != DriverSQLite {
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative timeout", ErrInvalidServerConfigs)
	}

	if cfg.RateLimit.Enabled() {
		if cfg.RateLimit.Capacity <= 0 || cfg.RateLimit.RefillTokens <= 0 || cfg.RateLimit.RefillInterval <= 0 {
			return ErrInvalidRateLimitConfigs
		}
	}

	return nil
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = DefaultClientHTTPAddress
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultClientRequestTimeout
	}
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
