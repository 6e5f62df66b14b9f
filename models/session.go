package models

import "time"

// Session is a server-side record binding an opaque token to a user login.
//
// Only the SHA-256 hash of the token is persisted; the plaintext Token is
// populated once, when the session is established, so that it can be handed
// to the client.
type Session struct {
	// Token is the plaintext session token. Never persisted.
	Token string `json:"-"`

	// TokenHash is the hex-encoded SHA-256 of Token and the storage key.
	TokenHash string `json:"token_hash"`

	// Login references the owning [User] by login. An empty Login marks an
	// anonymous session, which never passes the access gate.
	Login string `json:"login"`

	// ExpiresAt is the moment after which the session is no longer valid.
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is the moment the session was established.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// IsAnonymous reports whether the session is bound to no user.
func (s Session) IsAnonymous() bool {
	return s.Login == ""
}

// IsExpiredAt reports whether the session is expired at t.
func (s Session) IsExpiredAt(t time.Time) bool {
	return !t.Before(s.ExpiresAt)
}
