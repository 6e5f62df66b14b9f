package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-secrets/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists registered users.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID and CreatedAt
	// filled in. Returns [ErrLoginAlreadyExists] when the login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin looks up the user whose Login equals user.Login.
	// Returns [ErrNoUserWasFound] when there is none.
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// SessionRepository persists server-side sessions keyed by token hash.
type SessionRepository interface {
	// SaveSession stores session under session.TokenHash.
	SaveSession(ctx context.Context, session models.Session) error

	// FindSessionByTokenHash returns the session stored under tokenHash or
	// [ErrSessionNotFound].
	FindSessionByTokenHash(ctx context.Context, tokenHash string) (models.Session, error)

	// DeleteSession removes the session stored under tokenHash. Deleting a
	// missing session is not an error.
	DeleteSession(ctx context.Context, tokenHash string) error

	// DeleteExpiredSessions removes every session that expired at or before
	// now and returns how many were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// ErrorClassificator maps driver errors onto store semantics.
type ErrorClassificator interface {
	// Classify reports whether the failed operation may succeed on retry.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint
	// violation.
	IsUniqueViolation(err error) bool
}
