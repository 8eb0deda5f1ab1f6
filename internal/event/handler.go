package event

import (
	"context"
	"errors"
	"net/http"

	errorx "github.com/ferdiebergado/eventsapi/internal/pkg/error"
	"github.com/ferdiebergado/eventsapi/internal/pkg/message"
	"github.com/ferdiebergado/eventsapi/internal/pkg/web"
)

type Service interface {
	List(ctx context.Context, params ListParams) ([]ListView, error)
	Find(ctx context.Context, params FindParams) (*DetailView, error)
}

type Handler struct {
	svc Service
}

// List handles GET /api/events.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params, err := web.ParamsFromContext[ListParams](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	views, err := h.svc.List(r.Context(), params)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	web.SendJSON(w, http.StatusOK, views)
}

// Show handles GET /api/events/{event_id}.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	params, err := web.ParamsFromContext[FindParams](r.Context())
	if err != nil {
		web.Fail(w, http.StatusBadRequest, err, message.InvalidInput, nil)
		return
	}

	view, err := h.svc.Find(r.Context(), params)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			web.RespondNotFound(w, err, message.EventNotFound)
			return
		}
		respondServiceError(w, err)
		return
	}

	web.SendJSON(w, http.StatusOK, view)
}

// respondServiceError answers 503 when the request context ended before the
// service finished, and 500 for any other failure.
func respondServiceError(w http.ResponseWriter, err error) {
	if errorx.IsContextError(err) {
		web.RespondServiceUnavailable(w, err, message.RequestInterrupted)
		return
	}
	web.RespondInternalServerError(w, err)
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}
