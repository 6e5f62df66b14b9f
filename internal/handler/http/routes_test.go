package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-secrets/internal/logger"
	"github.com/MKhiriev/go-secrets/internal/metrics"
	"github.com/MKhiriev/go-secrets/internal/service"
	"github.com/MKhiriev/go-secrets/internal/utils"
	"github.com/MKhiriev/go-secrets/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h *Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ---- Public pages ----

func TestRoutes_PublicPages(t *testing.T) {
	h := newTestHTTPHandler(t, &mockAuthService{}, &mockSessionService{})

	tests := []struct {
		path        string
		wantContent string
	}{
		{"/", `href="/register"`},
		{"/register", `action="/register"`},
		{"/login", `action="/login"`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := serve(t, h, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantContent)
			assert.Contains(t, rec.Body.String(), `href="/static/styles.css"`)
			assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
		})
	}
}

func TestRoutes_StaticAssets(t *testing.T) {
	h := newTestHTTPHandler(t, &mockAuthService{}, &mockSessionService{})

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/static/styles.css", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/css")

	rec = serve(t, h, httptest.NewRequest(http.MethodGet, "/static/missing.css", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// ---- Session gate ----

func TestRoutes_SecretsGate(t *testing.T) {
	tests := []struct {
		name         string
		cookie       *http.Cookie
		wantToken    string
		allow        bool
		wantStatus   int
		wantLocation string
	}{
		{
			name:       "valid session",
			cookie:     &http.Cookie{Name: sessionCookieName, Value: utils.SignValue("good", testSessionSecret)},
			wantToken:  "good",
			allow:      true,
			wantStatus: http.StatusOK,
		},
		{
			name:         "unknown session",
			cookie:       &http.Cookie{Name: sessionCookieName, Value: utils.SignValue("stale", testSessionSecret)},
			wantToken:    "stale",
			wantStatus:   http.StatusFound,
			wantLocation: "/login",
		},
		{
			name:         "no cookie",
			wantStatus:   http.StatusFound,
			wantLocation: "/login",
		},
		{
			name:         "forged signature",
			cookie:       &http.Cookie{Name: sessionCookieName, Value: "good.deadbeef"},
			wantStatus:   http.StatusFound,
			wantLocation: "/login",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotToken string
			sessions := &mockSessionService{
				authorizeFn: func(_ context.Context, token string) models.Decision {
					gotToken = token
					if tt.allow && token == tt.wantToken {
						return models.Allow("a@b.com")
					}
					return models.Deny
				},
			}
			h := newTestHTTPHandler(t, &mockAuthService{}, sessions)

			req := httptest.NewRequest(http.MethodGet, "/secrets", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := serve(t, h, req)

			assert.Equal(t, tt.wantToken, gotToken)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			if tt.allow {
				assert.Contains(t, rec.Body.String(), "a@b.com")
				assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
			}
		})
	}
}

func TestRequireSession_StoresLoginInContext(t *testing.T) {
	sessions := &mockSessionService{
		authorizeFn: func(context.Context, string) models.Decision { return models.Allow("a@b.com") },
	}
	h := newTestHTTPHandler(t, &mockAuthService{}, sessions)

	var login string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		login, _ = utils.GetLoginFromContext(r.Context())
	})

	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/secrets", nil), "tok")
	h.requireSession(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, "a@b.com", login)
}

// ---- Method handling ----

func TestRoutes_WrongMethodIsNotFound(t *testing.T) {
	h := newTestHTTPHandler(t, &mockAuthService{}, &mockSessionService{})

	for _, tt := range []struct{ method, path string }{
		{http.MethodPost, "/secrets"},
		{http.MethodPost, "/logout"},
		{http.MethodPut, "/register"},
		{http.MethodDelete, "/login"},
	} {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := serve(t, h, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestRoutes_PanicIsRecovered(t *testing.T) {
	sessions := &mockSessionService{
		authorizeFn: func(context.Context, string) models.Decision { panic("boom") },
	}
	h := newTestHTTPHandler(t, &mockAuthService{}, sessions)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/secrets", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "boom")
}

// ---- Health and metrics ----

func TestRoutes_Healthz(t *testing.T) {
	tests := []struct {
		name       string
		pinger     Pinger
		wantStatus int
		wantBody   string
	}{
		{"no pinger", nil, http.StatusOK, `{"status":"ok"}`},
		{"store up", pingerFunc(func(context.Context) error { return nil }), http.StatusOK, `{"status":"ok"}`},
		{"store down", pingerFunc(func(context.Context) error { return errors.New("refused") }), http.StatusServiceUnavailable, `{"status":"unavailable"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := NewHandler(&service.Services{}, testAppConfig(), tt.pinger, nil, logger.Nop())
			require.NoError(t, err)

			rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestRoutes_Metrics(t *testing.T) {
	h, err := NewHandler(&service.Services{}, testAppConfig(), nil, metrics.NewRegistry(), logger.Nop())
	require.NoError(t, err)

	metrics.RecordGateDecision(false)
	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "secrets_gate_decisions_total")
}

func TestRoutes_MetricsDisabledWithoutRegistry(t *testing.T) {
	h, err := NewHandler(&service.Services{}, testAppConfig(), nil, nil, logger.Nop())
	require.NoError(t, err)

	rec := serve(t, h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
