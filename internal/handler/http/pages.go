package http

import (
	"net/http"

	"github.com/MKhiriev/go-secrets/internal/app"
	"github.com/MKhiriev/go-secrets/internal/utils"
)

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageIndex, http.StatusOK, pageData{Title: "Home"})
}

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, pageRegister, http.StatusOK, pageData{Title: "Register"})
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	data := pageData{Title: "Login"}
	if h.takeLoginFailed(w, r) {
		data.Error = app.MsgInvalidLogin
	}

	h.render(w, r, pageLogin, http.StatusOK, data)
}

// secrets is served behind requireSession.
func (h *Handler) secrets(w http.ResponseWriter, r *http.Request) {
	login, _ := utils.GetLoginFromContext(r.Context())

	w.Header().Set("Cache-Control", "no-store")
	h.render(w, r, pageSecrets, http.StatusOK, pageData{Title: "Secrets", Login: login})
}
