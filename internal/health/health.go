// Package health reports whether the service can reach its database.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/ferdiebergado/eventsapi/internal/pkg/message"
	"github.com/ferdiebergado/eventsapi/internal/pkg/web"
	"github.com/ferdiebergado/eventsapi/internal/platform/db"
)

type Status struct {
	Status string `json:"status"`
}

type Handler struct {
	db      db.Pinger
	timeout time.Duration
}

// Check handles GET /health.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		web.RespondServiceUnavailable(w, err, message.ServiceUnhealthy)
		return
	}

	msg := message.ServiceHealthy
	web.OK(w, http.StatusOK, &msg, &Status{Status: "ok"})
}

func NewHandler(pinger db.Pinger, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = time.Second
	}
	return &Handler{db: pinger, timeout: timeout}
}
