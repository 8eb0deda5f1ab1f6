package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ferdiebergado/eventsapi/internal/config"
	"github.com/ferdiebergado/eventsapi/internal/event"
	"github.com/ferdiebergado/eventsapi/internal/health"
	"github.com/ferdiebergado/eventsapi/internal/metrics"
	"github.com/ferdiebergado/eventsapi/internal/middleware"
	"github.com/ferdiebergado/eventsapi/internal/platform/db"
	"github.com/ferdiebergado/eventsapi/internal/platform/router"
	"github.com/ferdiebergado/eventsapi/internal/platform/validation"
	"github.com/ferdiebergado/eventsapi/internal/uploads"
)

type App struct {
	server          *http.Server
	config          *config.Config
	middlewares     []func(http.Handler) http.Handler
	stop            context.CancelFunc
	shutdownTimeout time.Duration
	db              *sql.DB
	validator       validation.Validator
	router          router.Router
	txManager       db.TxManager
	metrics         *metrics.Metrics
}

func (a *App) registerMiddlewares() {
	for _, mw := range a.middlewares {
		a.router.Use(mw)
	}
	a.router.Use(a.metrics.Instrument)
}

func (a *App) setupRoutes() {
	eventModule := event.NewModule(a.db, a.txManager)
	mountEventRoutes(a.router, eventModule.Handler(), a.validator, a.config.Events)

	mountUploadRoutes(a.router, uploads.Handler(a.config.Uploads.Dir, a.config.Uploads.URLPrefix), a.config.Uploads.URLPrefix)

	healthHandler := health.NewHandler(a.db, a.config.DB.PingTimeout.Duration)
	mountOpsRoutes(a.router, healthHandler, a.metrics.Handler())
}

// Handler returns the fully wired HTTP handler. CORS runs ahead of the router
// so that preflight requests are answered for every route.
func (a *App) Handler() http.Handler {
	a.registerMiddlewares()
	a.setupRoutes()

	return middleware.CORS(a.config.CORS.AllowedOrigins)(a.router)
}

func (a *App) Start(ctx context.Context) error {
	a.server.Handler = a.Handler()

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Server listening...", "address", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- fmt.Errorf("listen and serve: %w", err)
			return
		}
		slog.Info("Server has stopped.")
		serverErr <- nil
	}()

	select {
	case <-ctx.Done():
		slog.Info("Shutdown signal received.")
		return nil
	case err := <-serverErr:
		return err
	}
}

func (a *App) Shutdown() error {
	slog.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	// In-flight requests drain before their base context is cancelled.
	err := a.server.Shutdown(shutdownCtx)
	a.stop()
	if err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	return nil
}

func New(cfg *config.Config, provider *Provider, middlewares []func(http.Handler) http.Handler) *App {
	serverCtx, stop := context.WithCancel(context.Background())
	serverCfg := cfg.Server
	server := &http.Server{
		Addr: fmt.Sprintf(":%d", serverCfg.Port),
		BaseContext: func(_ net.Listener) context.Context {
			return serverCtx
		},
		ReadTimeout:  serverCfg.ReadTimeout.Duration,
		WriteTimeout: serverCfg.WriteTimeout.Duration,
		IdleTimeout:  serverCfg.IdleTimeout.Duration,
	}

	return &App{
		config:          cfg,
		db:              provider.DB,
		txManager:       provider.TxMgr,
		validator:       provider.Validator,
		router:          provider.Router,
		metrics:         provider.Metrics,
		server:          server,
		middlewares:     middlewares,
		stop:            stop,
		shutdownTimeout: serverCfg.ShutdownTimeout.Duration,
	}
}
