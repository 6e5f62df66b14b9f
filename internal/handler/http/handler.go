package http

import (
	"context"
	"html/template"
	"time"

	"github.com/MKhiriev/go-secrets/internal/config"
	"github.com/MKhiriev/go-secrets/internal/logger"
	"github.com/MKhiriev/go-secrets/internal/service"
	"github.com/MKhiriev/go-secrets/internal/utils"
	"github.com/prometheus/client_golang/prometheus"
)

// Pinger reports whether the backing stores are reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services *service.Services
	pinger   Pinger
	registry *prometheus.Registry

	pages map[string]*template.Template

	sessionSecret string
	sessionTTL    time.Duration
	cookieSecure  bool

	traceIDs *utils.UUIDGenerator
	logger   *logger.Logger
}

// NewHandler parses the embedded page templates and returns a Handler bound
// to services. pinger may be nil, in which case /healthz only reports that
// the process is up. registry is served on /metrics.
func NewHandler(services *service.Services, cfg config.App, pinger Pinger, registry *prometheus.Registry, logger *logger.Logger) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, err
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		pinger:        pinger,
		registry:      registry,
		pages:         pages,
		sessionSecret: cfg.SessionSecret,
		sessionTTL:    cfg.SessionTTL,
		cookieSecure:  cfg.SessionCookieSecure,
		traceIDs:      utils.NewUUIDGenerator(),
		logger:        logger,
	}, nil
}
