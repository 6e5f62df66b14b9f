package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secrets/internal/logger"
	"github.com/MKhiriev/go-secrets/models"
	"github.com/redis/go-redis/v9"
)

const redisSessionKeyPrefix = "session:"

// redisSessionRepository keeps sessions in Redis under
// "session:<token hash>" with a TTL matching the session expiry, so expired
// sessions vanish on their own.
type redisSessionRepository struct {
	client redis.UniversalClient
	logger *logger.Logger
	now    func() time.Time
}

type redisSession struct {
	Login     string    `json:"login"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// NewConnectRedis parses a redis:// URL, connects and pings the server.
func NewConnectRedis(ctx context.Context, redisURL string, log *logger.Logger) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("error parsing redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err = client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewConnectRedis").Msg("error connecting redis (ping)")
		_ = client.Close()
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	log.Info().Str("func", "NewConnectRedis").Msg("connected to redis successfully")

	return client, nil
}

// NewRedisSessionRepository constructs a Redis-backed [SessionRepository].
func NewRedisSessionRepository(client redis.UniversalClient, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating redis session repository")
	return &redisSessionRepository{
		client: client,
		logger: logger,
		now:    time.Now,
	}
}

func redisSessionKey(tokenHash string) string {
	return redisSessionKeyPrefix + tokenHash
}

func (r *redisSessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		// already expired; nothing could ever read it back
		return nil
	}

	payload, err := json.Marshal(redisSession{
		Login:     session.Login,
		ExpiresAt: session.ExpiresAt.UTC(),
		CreatedAt: session.CreatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("error encoding session: %w", err)
	}

	if err = r.client.Set(ctx, redisSessionKey(session.TokenHash), payload, ttl).Err(); err != nil {
		log.Err(err).Str("func", "*redisSessionRepository.SaveSession").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

func (r *redisSessionRepository) FindSessionByTokenHash(ctx context.Context, tokenHash string) (models.Session, error) {
	log := logger.FromContext(ctx)

	payload, err := r.client.Get(ctx, redisSessionKey(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Session{}, ErrSessionNotFound
		}
		log.Err(err).Str("func", "*redisSessionRepository.FindSessionByTokenHash").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var stored redisSession
	if err = json.Unmarshal(payload, &stored); err != nil {
		return models.Session{}, fmt.Errorf("error decoding session: %w", err)
	}

	return models.Session{
		TokenHash: tokenHash,
		Login:     stored.Login,
		ExpiresAt: stored.ExpiresAt,
		CreatedAt: stored.CreatedAt,
	}, nil
}

func (r *redisSessionRepository) DeleteSession(ctx context.Context, tokenHash string) error {
	if err := r.client.Del(ctx, redisSessionKey(tokenHash)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionRepository.DeleteSession").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	return nil
}

// DeleteExpiredSessions is a no-op: Redis evicts keys when their TTL runs
// out.
func (r *redisSessionRepository) DeleteExpiredSessions(context.Context, time.Time) (int64, error) {
	return 0, nil
}
