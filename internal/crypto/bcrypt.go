// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the bcrypt-backed implementation of [PasswordHasher].
//
// slots bounds the number of hash computations running at once so that a
// burst of logins cannot starve the rest of the process of CPU.
type bcryptHasher struct {
	cost  int
	slots chan struct{}
}

// NewBcryptHasher constructs a [PasswordHasher] with the given bcrypt work
// factor. concurrency caps simultaneous computations; a value below 1 falls
// back to runtime.GOMAXPROCS(0).
//
// Returns [ErrInvalidCost] if cost is outside [bcrypt.MinCost, bcrypt.MaxCost].
func NewBcryptHasher(cost, concurrency int) (PasswordHasher, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("%w: %d must be in [%d, %d]", ErrInvalidCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	if concurrency < 1 {
		concurrency = runtime.GOMAXPROCS(0)
	}

	return &bcryptHasher{
		cost:  cost,
		slots: make(chan struct{}, concurrency),
	}, nil
}

// Hash implements [PasswordHasher].
func (h *bcryptHasher) Hash(ctx context.Context, password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	return h.run(ctx, func() (string, error) {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
		if err != nil {
			if errors.Is(err, bcrypt.ErrPasswordTooLong) {
				return "", ErrPasswordTooLong
			}
			return "", fmt.Errorf("%w: %w", ErrHasherFailure, err)
		}
		return string(hash), nil
	})
}

// Verify implements [PasswordHasher].
func (h *bcryptHasher) Verify(ctx context.Context, password, hash string) (bool, error) {
	if !strings.HasPrefix(hash, "$2") {
		return false, ErrInvalidHash
	}

	res, err := h.run(ctx, func() (string, error) {
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
		switch {
		case err == nil:
			return "ok", nil
		case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
			return "", nil
		case errors.Is(err, bcrypt.ErrHashTooShort):
			return "", ErrInvalidHash
		default:
			var costErr bcrypt.InvalidCostError
			var versionErr bcrypt.HashVersionTooNewError
			var prefixErr bcrypt.InvalidHashPrefixError
			if errors.As(err, &costErr) || errors.As(err, &versionErr) || errors.As(err, &prefixErr) {
				return "", fmt.Errorf("%w: %w", ErrInvalidHash, err)
			}
			return "", fmt.Errorf("%w: %w", ErrHasherFailure, err)
		}
	})
	if err != nil {
		return false, err
	}

	return res != "", nil
}

// run executes fn on its own goroutine once a slot is free and waits for the
// result or for ctx to be done, whichever comes first.
func (h *bcryptHasher) run(ctx context.Context, fn func() (string, error)) (string, error) {
	select {
	case h.slots <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}

	type result struct {
		value string
		err   error
	}
	done := make(chan result, 1)

	go func() {
		defer func() { <-h.slots }()
		value, err := fn()
		done <- result{value: value, err: err}
	}()

	select {
	case res := <-done:
		return res.value, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// dummyHashBody is a syntactically valid bcrypt salt+checksum that no
// password hashes to.
const dummyHashBody = "C6UzMDM.H6dfI/f/IKxGhuSDTXnmOaLsSrcnqS2ICiDyo9m3lBnf."

// DummyHash returns a well-formed bcrypt hash with the given cost that never
// matches any password. Verifying against it costs the same as verifying a
// real hash of that cost, which keeps the unknown-login path as slow as the
// wrong-password path.
func DummyHash(cost int) string {
	return fmt.Sprintf("$2a$%02d$%s", cost, dummyHashBody)
}
