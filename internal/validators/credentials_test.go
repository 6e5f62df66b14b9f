// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-secrets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func validUser() models.User {
	return models.User{
		Login:    "a@b.com",
		Password: "pw1",
	}
}

// ---------------------------------------------------------------------------
// TestNewCredentialsValidator
// ---------------------------------------------------------------------------

func TestNewCredentialsValidator(t *testing.T) {
	v := NewCredentialsValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	t.Run("unsupported type", func(t *testing.T) {
		err := v.Validate(ctx, "a string")
		require.ErrorIs(t, err, ErrUnsupportedType)
	})

	t.Run("User value", func(t *testing.T) {
		err := v.Validate(ctx, validUser())
		require.NoError(t, err)
	})

	t.Run("User pointer", func(t *testing.T) {
		u := validUser()
		err := v.Validate(ctx, &u)
		require.NoError(t, err)
	})

	t.Run("nil User pointer", func(t *testing.T) {
		var u *models.User
		err := v.Validate(ctx, u)
		require.ErrorIs(t, err, ErrUnsupportedType)
	})
}

// ---------------------------------------------------------------------------
// TestValidate_Credentials
// ---------------------------------------------------------------------------

func TestValidate_Credentials(t *testing.T) {
	v := NewCredentialsValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(u *models.User)
		fields  []string
		wantErr error
	}{
		{
			name:   "valid credentials",
			mutate: func(u *models.User) {},
		},
		{
			name:    "empty login",
			mutate:  func(u *models.User) { u.Login = "" },
			wantErr: ErrEmptyLogin,
		},
		{
			name:    "empty password",
			mutate:  func(u *models.User) { u.Password = "" },
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "both empty reports login first",
			mutate:  func(u *models.User) { u.Login, u.Password = "", "" },
			wantErr: ErrEmptyLogin,
		},
		{
			name:    "login too long",
			mutate:  func(u *models.User) { u.Login = strings.Repeat("a", MaxLoginLength+1) },
			wantErr: ErrLoginTooLong,
		},
		{
			name:   "login at max length",
			mutate: func(u *models.User) { u.Login = strings.Repeat("a", MaxLoginLength) },
		},
		{
			name:    "login with newline",
			mutate:  func(u *models.User) { u.Login = "a@b.com\n" },
			wantErr: ErrInvalidLogin,
		},
		{
			name:   "login with surrounding spaces is kept as is",
			mutate: func(u *models.User) { u.Login = " a@b.com " },
		},
		{
			name:   "only password field checked",
			mutate: func(u *models.User) { u.Login = "" },
			fields: []string{FieldPassword},
		},
		{
			name:   "only login field checked",
			mutate: func(u *models.User) { u.Password = "" },
			fields: []string{FieldLogin},
		},
		{
			name:    "unknown field",
			mutate:  func(u *models.User) {},
			fields:  []string{"email"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser()
			tt.mutate(&u)

			err := v.Validate(ctx, u, tt.fields...)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
