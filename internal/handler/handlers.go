package handler

import (
	"fmt"

	"github.com/MKhiriev/go-secrets/internal/config"
	"github.com/MKhiriev/go-secrets/internal/handler/http"
	"github.com/MKhiriev/go-secrets/internal/logger"
	"github.com/MKhiriev/go-secrets/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers for cfg. pinger backs the health
// check and registry is exposed on /metrics; either may be nil.
func NewHandlers(services *service.Services, cfg *config.StructuredConfig, pinger http.Pinger, registry *prometheus.Registry, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, cfg.App, pinger, registry, logger)
	if err != nil {
		return nil, fmt.Errorf("http handler creation failed: %w", err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
