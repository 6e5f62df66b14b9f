// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secrets/internal/logger"
	"github.com/rs/zerolog"
)

// SessionPurger deletes sessions whose expiry has passed.
type SessionPurger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type sessionSweeper struct {
	sessions SessionPurger
	interval time.Duration
	logger   *logger.Logger
}

// NewSessionSweeper returns a Worker that calls PurgeExpired every interval.
// Lookups already ignore expired sessions; the sweeper only reclaims space.
func NewSessionSweeper(sessions SessionPurger, interval time.Duration, l *logger.Logger) Worker {
	child := l.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("worker", "session-sweeper")
	})

	return &sessionSweeper{
		sessions: sessions,
		interval: interval,
		logger:   child,
	}
}

func (s *sessionSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("session sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	purged, err := s.sessions.PurgeExpired(ctx)
	if err != nil {
		s.logger.Err(err).Msg("purging expired sessions failed")
		return
	}

	if purged > 0 {
		s.logger.Debug().Int64("purged", purged).Msg("expired sessions purged")
	}
}
