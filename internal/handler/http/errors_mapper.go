package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-secrets/internal/app"
	"github.com/MKhiriev/go-secrets/internal/crypto"
	"github.com/MKhiriev/go-secrets/internal/service"
	"github.com/MKhiriev/go-secrets/internal/store"
	"github.com/MKhiriev/go-secrets/internal/validators"
)

// errorStatuses is checked in order; the first match wins. message is what
// the user gets to see on the form; entries without one fall back to
// [app.MsgTryAgainLater].
var errorStatuses = []struct {
	err     error
	status  int
	message string
}{
	{service.ErrInvalidCredentials, http.StatusUnauthorized, ""},

	{validators.ErrLoginTooLong, http.StatusBadRequest, app.MsgLoginTooLong},
	{validators.ErrInvalidLogin, http.StatusBadRequest, app.MsgLoginInvalid},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgCredentialsRequired},
	{crypto.ErrPasswordTooLong, http.StatusBadRequest, app.MsgPasswordTooLong},
	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},

	{service.ErrSessionCreationFailed, http.StatusInternalServerError, ""},
	{crypto.ErrHasherFailure, http.StatusInternalServerError, ""},
	{store.ErrStoreUnavailable, http.StatusInternalServerError, ""},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, ""},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			if e.message == "" {
				break
			}
			return e.message
		}
	}
	return app.MsgTryAgainLater
}
