package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secrets/internal/app"
	"github.com/MKhiriev/go-secrets/internal/logger"
	"github.com/MKhiriev/go-secrets/internal/service"
)

// Form field names posted by the register and login pages.
const (
	formFieldUsername = "username"
	formFieldPassword = "password"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		h.render(w, r, pageRegister, http.StatusBadRequest, pageData{Title: "Register", Error: app.MsgInvalidForm})
		return
	}
	login := r.PostForm.Get(formFieldUsername)
	password := r.PostForm.Get(formFieldPassword)

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, login, password)
	if err != nil {
		status := statusFromError(err)
		if status == http.StatusInternalServerError {
			log.Err(err).Msg("unexpected error occurred during user registration")
			h.renderError(w, r, status)
			return
		}

		log.Info().Err(err).Int("status", status).Msg("registration refused")
		h.render(w, r, pageRegister, status, pageData{
			Title: "Register",
			Error: messageFromError(err),
			Login: login,
		})
		return
	}

	h.dropCurrentSession(r)

	session, err := h.services.SessionService.Establish(ctx, registeredUser.Login)
	if err != nil {
		// the account exists, so the user can still log in by hand
		log.Err(err).Str("login", registeredUser.Login).Msg("session creation after registration failed")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	h.setSessionCookie(w, session.Token)
	http.Redirect(w, r, "/secrets", http.StatusFound)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, r.PostForm.Get(formFieldUsername), r.PostForm.Get(formFieldPassword))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.setLoginFailedCookie(w)
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		log.Err(err).Msg("unexpected error occurred during user login")
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}

	h.dropCurrentSession(r)

	session, err := h.services.SessionService.Establish(ctx, foundUser.Login)
	if err != nil {
		log.Err(err).Str("login", foundUser.Login).Msg("session creation failed")
		h.renderError(w, r, http.StatusInternalServerError)
		return
	}

	h.setSessionCookie(w, session.Token)
	http.Redirect(w, r, "/secrets", http.StatusFound)
}

// dropCurrentSession destroys the session the browser already carries, if
// any, so it does not outlive a new login or registration.
func (h *Handler) dropCurrentSession(r *http.Request) {
	if token := h.sessionToken(r); token != "" {
		_ = h.services.SessionService.Destroy(r.Context(), token)
	}
}

// logout ends the session and clears the cookie. A storage failure is logged
// by the session service; the client is logged out regardless.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if token := h.sessionToken(r); token != "" {
		_ = h.services.SessionService.Destroy(r.Context(), token)
	}

	h.clearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
