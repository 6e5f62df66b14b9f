package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-secrets/models"
)

// memorySessionRepository keeps sessions in process memory. Sessions are
// lost on restart and are not shared between replicas.
type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemorySessionRepository constructs an in-memory [SessionRepository].
func NewMemorySessionRepository() SessionRepository {
	return &memorySessionRepository{
		sessions: make(map[string]models.Session),
	}
}

func (m *memorySessionRepository) SaveSession(_ context.Context, session models.Session) error {
	session.Token = ""

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.TokenHash] = session

	return nil
}

func (m *memorySessionRepository) FindSessionByTokenHash(_ context.Context, tokenHash string) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[tokenHash]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (m *memorySessionRepository) DeleteSession(_ context.Context, tokenHash string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, tokenHash)

	return nil
}

func (m *memorySessionRepository) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var deleted int64
	for hash, session := range m.sessions {
		if session.IsExpiredAt(now) {
			delete(m.sessions, hash)
			deleted++
		}
	}

	return deleted, nil
}
