package service

import (
	"fmt"

	"github.com/MKhiriev/go-secrets/internal/config"
	"github.com/MKhiriev/go-secrets/internal/crypto"
	"github.com/MKhiriev/go-secrets/internal/logger"
	"github.com/MKhiriev/go-secrets/internal/store"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
}

// NewServices builds the password hasher from cfg.App and wires it together
// with the repositories in storages.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewBcryptHasher(cfg.SaltRounds, cfg.HashConcurrency)
	if err != nil {
		return nil, fmt.Errorf("password hasher creation failed: %w", err)
	}

	strategy := NewLocalStrategy(storages.UserRepository, hasher, crypto.DummyHash(cfg.SaltRounds))

	logger.Info().Int("salt_rounds", cfg.SaltRounds).Dur("session_ttl", cfg.SessionTTL).Msg("services created")

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, strategy),
		SessionService: NewSessionService(storages.SessionRepository, cfg.SessionTTL),
	}, nil
}
