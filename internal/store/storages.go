package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-secrets/internal/config"
	"github.com/MKhiriev/go-secrets/internal/logger"
	"github.com/redis/go-redis/v9"
)

// Storages groups the repositories handed to the service layer together
// with the connections that back them.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository

	db    *DB
	redis *redis.Client
}

// NewStorages connects to the database named by cfg.DB, applies migrations
// and builds the session repository selected by cfg.Sessions.Backend.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	storages := &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}

	switch cfg.Sessions.Backend {
	case config.SessionBackendSQL:
		storages.SessionRepository = NewSessionRepository(db, log)
	case config.SessionBackendRedis:
		client, err := NewConnectRedis(ctx, cfg.Sessions.RedisURL, log)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("redis connection error: %w", err)
		}
		storages.redis = client
		storages.SessionRepository = NewRedisSessionRepository(client, log)
	case config.SessionBackendMemory:
		storages.SessionRepository = NewMemorySessionRepository()
	default:
		_ = db.Close()
		return nil, fmt.Errorf("%w: %q", ErrUnknownSessionBackend, cfg.Sessions.Backend)
	}

	log.Info().Str("session_backend", cfg.Sessions.Backend).Msg("storages created")
	return storages, nil
}

// Ping checks that every backing connection is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	if s.db != nil {
		if err := s.db.PingContext(ctx); err != nil {
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
		}
	}

	return nil
}

// Close releases every backing connection.
func (s *Storages) Close() error {
	var errs []error

	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}

	return errors.Join(errs...)
}
