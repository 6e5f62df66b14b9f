package service

import (
	"context"

	"github.com/MKhiriev/go-secrets/models"
)

// AuthService registers users and checks their credentials.
type AuthService interface {
	// RegisterUser stores a new user with a hashed password. Returns
	// store.ErrLoginAlreadyExists when the login is taken.
	RegisterUser(ctx context.Context, login, password string) (models.User, error)

	// Login returns the user the credentials belong to or an error wrapping
	// ErrInvalidCredentials.
	Login(ctx context.Context, login, password string) (models.User, error)
}

// Strategy is a pluggable way of checking a login/password pair.
// Authenticate never returns an error; failures are reported through the
// result status.
type Strategy interface {
	Authenticate(ctx context.Context, login, password string) models.AuthResult
}

// SessionService manages server-side sessions addressed by opaque tokens.
type SessionService interface {
	// Establish creates a session for login and returns it with the
	// plaintext Token set.
	Establish(ctx context.Context, login string) (models.Session, error)

	// Resolve returns the login bound to token. ok is false for empty,
	// unknown, expired and anonymous sessions.
	Resolve(ctx context.Context, token string) (login string, ok bool, err error)

	// Destroy ends the session behind token. Destroying an unknown session
	// is not an error.
	Destroy(ctx context.Context, token string) error

	// Authorize is the access gate. Lookup failures deny.
	Authorize(ctx context.Context, token string) models.Decision

	// PurgeExpired removes expired sessions and returns how many were
	// removed.
	PurgeExpired(ctx context.Context) (int64, error)
}
