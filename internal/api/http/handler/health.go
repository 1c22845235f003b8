package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/dtroode/taskflow-server/internal/apierror"
	"github.com/dtroode/taskflow-server/internal/logger"
	"github.com/dtroode/taskflow-server/internal/model"
)

// Health reports whether the store is reachable.
type Health struct {
	pinger model.Pinger
	logger *logger.Logger
}

// NewHealth creates a new Health handler.
func NewHealth(pinger model.Pinger, logger *logger.Logger) *Health {
	return &Health{pinger: pinger, logger: logger}
}

// Check pings the store with a short timeout.
func (h *Health) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Error("Health handler: store unreachable",
			"error", err.Error())
		apierror.NewErrUnavailable("database").Write(w)
		return
	}

	writeResult(w, map[string]string{"status": "ok"})
}
