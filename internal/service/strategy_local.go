// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-secrets/internal/crypto"
	"github.com/MKhiriev/go-secrets/internal/store"
	"github.com/MKhiriev/go-secrets/models"
)

// localStrategy checks credentials against the users table.
type localStrategy struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	// dummyHash is verified when the login is unknown so that both
	// rejection paths take the same time.
	dummyHash string
}

// NewLocalStrategy returns a Strategy that looks the login up in
// userRepository and verifies the password with hasher.
func NewLocalStrategy(userRepository store.UserRepository, hasher crypto.PasswordHasher, dummyHash string) Strategy {
	return &localStrategy{
		userRepository: userRepository,
		hasher:         hasher,
		dummyHash:      dummyHash,
	}
}

// Authenticate implements Strategy.
func (s *localStrategy) Authenticate(ctx context.Context, login, password string) models.AuthResult {
	user, err := s.userRepository.FindUserByLogin(ctx, models.User{Login: login})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			_, _ = s.hasher.Verify(ctx, password, s.dummyHash)
			return models.AuthResult{Status: models.AuthRejected, Reason: models.RejectReasonNotFound}
		}
		return models.AuthResult{Status: models.AuthError, Err: err}
	}

	ok, err := s.hasher.Verify(ctx, password, user.PasswordHash)
	if err != nil {
		return models.AuthResult{Status: models.AuthError, Err: err}
	}
	if !ok {
		return models.AuthResult{Status: models.AuthRejected, Reason: models.RejectReasonBadCredentials}
	}

	user.PasswordHash = ""
	return models.AuthResult{Status: models.AuthAccepted, User: user}
}
