// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/MKhiriev/go-secrets/internal/app"
	"github.com/MKhiriev/go-secrets/internal/logger"
)

// Page names. Each one is a file under templates/ rendered inside
// templates/layout.html.
const (
	pageIndex    = "index.html"
	pageRegister = "register.html"
	pageLogin    = "login.html"
	pageSecrets  = "secrets.html"
	pageError    = "error.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// pageData is the model handed to every page template.
type pageData struct {
	Title string
	// Error is a user-facing message. It never carries internal details.
	Error string
	// Login is the submitted login on the register page and the signed-in
	// login on the secrets page.
	Login string
}

func parsePages() (map[string]*template.Template, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{pageIndex, pageRegister, pageLogin, pageSecrets, pageError} {
		tmpl, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("error parsing template %s: %w", name, err)
		}
		pages[name] = tmpl
	}
	return pages, nil
}

// staticFiles returns the embedded static directory rooted at static/.
func staticFiles() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// render executes page into a buffer and writes it with status. A template
// failure turns into a bare 500 so that a half-written page never reaches
// the client.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, page string, status int, data pageData) {
	log := logger.FromRequest(r)

	tmpl, ok := h.pages[page]
	if !ok {
		log.Err(ErrUnknownPage).Str("page", page).Send()
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Err(err).Str("page", page).Msg("template execution failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Err(err).Str("page", page).Msg("writing page failed")
	}
}

// renderError renders the generic error page for status.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int) {
	h.render(w, r, pageError, status, pageData{
		Title: http.StatusText(status),
		Error: app.MsgTryAgainLater,
	})
}
