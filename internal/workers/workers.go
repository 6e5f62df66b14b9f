package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-secrets/internal/config"
	"github.com/MKhiriev/go-secrets/internal/logger"
	"github.com/MKhiriev/go-secrets/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background jobs configured by cfg. The interval is
// validated as positive when the config is loaded.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	ws := &Workers{
		workers: []Worker{
			NewSessionSweeper(services.SessionService, cfg.SessionSweepInterval, logger),
		},
	}

	logger.Info().Int("count", len(ws.workers)).Msg("workers created")
	return ws
}

// Run starts every worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
