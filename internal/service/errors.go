package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is the single outward shape of a failed login.
	// It wraps ErrUserNotFound or ErrWrongPassword, which must only be
	// inspected for logging.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrWrongPassword      = errors.New("wrong password")

	ErrSessionCreationFailed = errors.New("session creation failed")
)
