// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-secrets/internal/logger"
	"github.com/MKhiriev/go-secrets/internal/utils"
	"github.com/rs/zerolog"
)

// requireSession is the access gate in front of protected pages.
//
// The session token is read from the signed cookie and handed to
// [service.SessionService.Authorize]. Denied requests are redirected to
// /login with 302 Found. For allowed ones the login is stored in the request
// context under [utils.LoginCtxKey] and added to the request logger.
func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		decision := h.services.SessionService.Authorize(ctx, h.sessionToken(r))
		if !decision.Allowed {
			logger.FromContext(ctx).Debug().Str("uri", r.RequestURI).Msg("access denied, redirecting to login")
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		l := logger.FromContext(ctx).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("login", decision.Login)
		})

		ctx = context.WithValue(l.WithContext(ctx), utils.LoginCtxKey, decision.Login)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
