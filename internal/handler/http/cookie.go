package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-secrets/internal/utils"
)

const sessionCookieName = "secrets_session"

// loginFailedCookieName carries the one-shot "invalid login" notice from a
// rejected POST /login to the login page it redirects to.
const (
	loginFailedCookieName = "login_failed"
	loginFailedCookieTTL  = 10 * time.Second
)

// setSessionCookie hands token to the client signed with the session secret.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    utils.SignValue(token, h.sessionSecret),
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionToken returns the token carried by the session cookie, or "" when
// the cookie is missing or its signature does not verify.
func (h *Handler) sessionToken(r *http.Request) string {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return ""
	}

	token, ok := utils.VerifySignedValue(cookie.Value, h.sessionSecret)
	if !ok {
		return ""
	}

	return token
}

func (h *Handler) setLoginFailedCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     loginFailedCookieName,
		Value:    "1",
		Path:     "/login",
		MaxAge:   int(loginFailedCookieTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeLoginFailed reports whether the request carries the login failure
// notice and clears it so it is shown once.
func (h *Handler) takeLoginFailed(w http.ResponseWriter, r *http.Request) bool {
	if _, err := r.Cookie(loginFailedCookieName); err != nil {
		return false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     loginFailedCookieName,
		Value:    "",
		Path:     "/login",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	return true
}
