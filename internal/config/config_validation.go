// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.SaltRounds < bcrypt.MinCost || cfg.App.SaltRounds > bcrypt.MaxCost {
		return fmt.Errorf("%w: salt rounds must be within [%d, %d], got %d",
			ErrInvalidHasherConfigs, bcrypt.MinCost, bcrypt.MaxCost, cfg.App.SaltRounds)
	}

	if cfg.App.HashConcurrency < 0 {
		return fmt.Errorf("%w: hash concurrency must not be negative", ErrInvalidHasherConfigs)
	}

	if cfg.App.SessionSecret == "" {
		return fmt.Errorf("%w: session secret is required", ErrInvalidAppConfigs)
	}

	if cfg.App.SessionTTL <= 0 {
		return fmt.Errorf("%w: session ttl must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database dsn is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Sessions.Backend {
	case SessionBackendSQL, SessionBackendMemory:
	case SessionBackendRedis:
		if cfg.Storage.Sessions.RedisURL == "" {
			return fmt.Errorf("%w: redis url is required for redis session backend", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown session backend %q", ErrInvalidStorageConfigs, cfg.Storage.Sessions.Backend)
	}

	if cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Workers.SessionSweepInterval <= 0 {
		return fmt.Errorf("%w: session sweep interval must be positive", ErrInvalidWorkerConfigs)
	}

	return nil
}
