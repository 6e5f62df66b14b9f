package models

import "time"

// User represents a registered account.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Login is the unique user login (an email address), stored and
	// compared case-sensitively.
	Login string `json:"login"`

	// Password carries the plaintext password on the way in and is never
	// persisted. It is cleared by the service layer once hashed.
	Password string `json:"-"`

	// PasswordHash is the bcrypt hash of the password in Modular Crypt
	// Format. It embeds its own salt and cost.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
