// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-secrets/models"
)

// Field name constants used to restrict credential validation to a subset of
// fields.
const (
	// FieldLogin targets the user login (email address).
	FieldLogin = "login"

	// FieldPassword targets the plaintext password.
	FieldPassword = "password"
)

// MaxLoginLength bounds the login so that it fits the users.email column.
const MaxLoginLength = 255

// CredentialsValidator implements the Validator interface for
// models.User values carrying submitted credentials.
//
// Logins are compared exactly, so no normalisation (trimming, case folding)
// is performed here; the validator only rejects values that could never be a
// usable identifier.
type CredentialsValidator struct{}

// NewCredentialsValidator returns a Validator for submitted credentials.
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate accepts models.User and *models.User.
// When no fields are given both login and password are checked.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldLogin:
			if user.Login == "" {
				return ErrEmptyLogin
			}
			if len(user.Login) > MaxLoginLength {
				return ErrLoginTooLong
			}
			if strings.IndexFunc(user.Login, unicode.IsControl) >= 0 {
				return ErrInvalidLogin
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
