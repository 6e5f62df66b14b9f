package config

import (
	"fmt"
	"net"
	"net/url"
)

// legacyEnv lists the unprefixed variables understood by earlier
// deployments of the service.
type legacyEnv struct {
	Port       string `env:"PORT"`
	Secret     string `env:"SECRET"`
	SaltRounds int    `env:"SALT_ROUNDS"`
	PGHost     string `env:"PG_HOST"`
	PGPort     string `env:"PG_PORT"`
	PGUser     string `env:"PG_USER"`
	PGPassword string `env:"PG_PASSWORD"`
	PGDatabase string `env:"PG_DB"`
}

func parseLegacyEnv() (*StructuredConfig, error) {
	var legacy legacyEnv
	if err := parseEnv(&legacy); err != nil {
		return nil, fmt.Errorf("error getting legacy env configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			SessionSecret: legacy.Secret,
			SaltRounds:    legacy.SaltRounds,
		},
		Storage: Storage{
			DB: DB{
				DSN: legacy.postgresDSN(),
			},
		},
	}

	if legacy.Port != "" {
		cfg.Server.HTTPAddress = ":" + legacy.Port
	}

	return cfg, nil
}

// postgresDSN assembles a postgres URL from the PG_* variables. It returns
// an empty string when PG_HOST is not set.
func (l legacyEnv) postgresDSN() string {
	if l.PGHost == "" {
		return ""
	}

	host := l.PGHost
	if l.PGPort != "" {
		host = net.JoinHostPort(l.PGHost, l.PGPort)
	}

	dsn := url.URL{
		Scheme:   "postgres",
		Host:     host,
		Path:     "/" + l.PGDatabase,
		RawQuery: "sslmode=disable",
	}
	switch {
	case l.PGUser != "" && l.PGPassword != "":
		dsn.User = url.UserPassword(l.PGUser, l.PGPassword)
	case l.PGUser != "":
		dsn.User = url.User(l.PGUser)
	}

	return dsn.String()
}
