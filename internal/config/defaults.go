package config

import "time"

const (
	defaultHTTPAddress          = ":3000"
	defaultRequestTimeout       = 30 * time.Second
	defaultSessionTTL           = 24 * time.Hour
	defaultMaxOpenConns         = 10
	defaultMaxIdleConns         = 4
	defaultConnectRetries       = 5
	defaultSessionBackend       = SessionBackendSQL
	defaultSessionSweepInterval = 10 * time.Minute
)

// applyDefaults fills fields that no source has set.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
	if cfg.App.SessionTTL == 0 {
		cfg.App.SessionTTL = defaultSessionTTL
	}
	if cfg.Storage.DB.MaxOpenConns == 0 {
		cfg.Storage.DB.MaxOpenConns = defaultMaxOpenConns
	}
	if cfg.Storage.DB.MaxIdleConns == 0 {
		cfg.Storage.DB.MaxIdleConns = defaultMaxIdleConns
	}
	if cfg.Storage.DB.ConnectRetries == 0 {
		cfg.Storage.DB.ConnectRetries = defaultConnectRetries
	}
	if cfg.Storage.Sessions.Backend == "" {
		cfg.Storage.Sessions.Backend = defaultSessionBackend
	}
	if cfg.Workers.SessionSweepInterval == 0 {
		cfg.Workers.SessionSweepInterval = defaultSessionSweepInterval
	}
}
