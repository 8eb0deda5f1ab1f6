package app

import (
	"net/http"
	"strings"

	"github.com/ferdiebergado/eventsapi/internal/config"
	"github.com/ferdiebergado/eventsapi/internal/event"
	"github.com/ferdiebergado/eventsapi/internal/health"
	"github.com/ferdiebergado/eventsapi/internal/middleware"
	"github.com/ferdiebergado/eventsapi/internal/platform/router"
	"github.com/ferdiebergado/eventsapi/internal/platform/validation"
)

func mountEventRoutes(r router.Router, handler *event.Handler, validator validation.Validator, cfg *config.Events) {
	listMiddlewares := []func(http.Handler) http.Handler{
		middleware.DecodeQuery(event.ListParamsDecoder(cfg)),
		middleware.ValidateInput[event.ListParams](validator),
	}
	findMiddlewares := []func(http.Handler) http.Handler{
		middleware.DecodeQuery(event.FindParamsDecoder(cfg)),
		middleware.ValidateInput[event.FindParams](validator),
	}

	r.Get("/api/events", handler.List, listMiddlewares...)
	r.Group("/api/events", func(gr router.Router) {
		gr.Get("/{$}", handler.List, listMiddlewares...)
		gr.Get("/{"+event.PathEventID+"}", handler.Show, findMiddlewares...)
	})
}

func mountUploadRoutes(r router.Router, files http.Handler, prefix string) {
	r.Mount("/"+strings.Trim(prefix, "/")+"/", files)
}

func mountOpsRoutes(r router.Router, healthHandler *health.Handler, metricsHandler http.Handler) {
	r.Get("/health", healthHandler.Check)
	r.Mount("/metrics", metricsHandler)
}
