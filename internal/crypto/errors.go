// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrInvalidCost is returned by [NewBcryptHasher] when the work factor is
	// outside [bcrypt.MinCost, bcrypt.MaxCost].
	ErrInvalidCost = errors.New("invalid bcrypt cost")

	// ErrEmptyPassword is returned when hashing an empty password.
	ErrEmptyPassword = errors.New("password cannot be empty")

	// ErrPasswordTooLong is returned for passwords longer than bcrypt's
	// 72-byte input limit.
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrInvalidHash is returned by Verify when the stored hash cannot be
	// parsed.
	ErrInvalidHash = errors.New("invalid password hash")

	// ErrHasherFailure wraps any other hashing failure. It is fatal for the
	// current request.
	ErrHasherFailure = errors.New("password hasher failure")

	// ErrTokenGeneration is returned when the system CSPRNG cannot supply
	// bytes for a session token.
	ErrTokenGeneration = errors.New("session token generation failed")
)
