// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-secrets/internal/crypto"
	"github.com/MKhiriev/go-secrets/internal/logger"
	"github.com/MKhiriev/go-secrets/internal/metrics"
	"github.com/MKhiriev/go-secrets/internal/store"
	"github.com/MKhiriev/go-secrets/models"
)

// sessionService is the concrete implementation of SessionService.
type sessionService struct {
	sessionRepository store.SessionRepository

	// ttl is how long a newly established session stays valid.
	ttl time.Duration

	now           func() time.Time
	generateToken func() (token, hash string, err error)
}

// NewSessionService constructs a SessionService whose sessions live for ttl.
func NewSessionService(sessionRepository store.SessionRepository, ttl time.Duration) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		ttl:               ttl,
		now:               time.Now,
		generateToken:     crypto.GenerateSessionToken,
	}
}

// Establish implements SessionService.
func (s *sessionService) Establish(ctx context.Context, login string) (models.Session, error) {
	log := logger.FromContext(ctx)

	if login == "" {
		log.Error().Msg("attempt to establish an anonymous session")
		return models.Session{}, ErrInvalidDataProvided
	}

	token, hash, err := s.generateToken()
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	now := s.now().UTC()
	session := models.Session{
		Token:     token,
		TokenHash: hash,
		Login:     login,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}

	if err = s.sessionRepository.SaveSession(ctx, session); err != nil {
		log.Err(err).Str("login", login).Msg("session saving failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	return session, nil
}

// Resolve implements SessionService. Expired sessions found here are deleted.
func (s *sessionService) Resolve(ctx context.Context, token string) (string, bool, error) {
	if token == "" {
		return "", false, nil
	}

	log := logger.FromContext(ctx)
	hash := crypto.HashSessionToken(token)

	session, err := s.sessionRepository.FindSessionByTokenHash(ctx, hash)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("session lookup failed: %w", err)
	}

	if session.IsExpiredAt(s.now()) {
		if err = s.sessionRepository.DeleteSession(ctx, hash); err != nil {
			log.Err(err).Msg("expired session deletion failed")
		}
		return "", false, nil
	}

	if session.IsAnonymous() {
		return "", false, nil
	}

	return session.Login, true, nil
}

// Destroy implements SessionService.
func (s *sessionService) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.sessionRepository.DeleteSession(ctx, crypto.HashSessionToken(token)); err != nil {
		logger.FromContext(ctx).Err(err).Msg("session deletion failed")
		return fmt.Errorf("session deletion failed: %w", err)
	}

	return nil
}

// Authorize implements SessionService.
func (s *sessionService) Authorize(ctx context.Context, token string) models.Decision {
	login, ok, err := s.Resolve(ctx, token)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("session resolution failed, denying access")
	}

	metrics.RecordGateDecision(ok)
	if !ok {
		return models.Deny
	}

	return models.Allow(login)
}

// PurgeExpired implements SessionService.
func (s *sessionService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.sessionRepository.DeleteExpiredSessions(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("expired sessions purge failed: %w", err)
	}

	metrics.RecordSessionsPurged(n)
	return n, nil
}
