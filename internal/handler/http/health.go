package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/go-secrets/internal/logger"
	"github.com/MKhiriev/go-secrets/internal/utils"
)

const healthCheckTimeout = 2 * time.Second

type healthResponse struct {
	Status string `json:"status"`
}

// healthz answers 200 {"status":"ok"} when the backing stores respond and
// 503 {"status":"unavailable"} otherwise.
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	if h.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := h.pinger.Ping(ctx); err != nil {
			logger.FromRequest(r).Err(err).Msg(ErrStorageUnhealthy.Error())
			_ = utils.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
			return
		}
	}

	_ = utils.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}
