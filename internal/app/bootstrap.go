package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ferdiebergado/eventsapi/internal/config"
	"github.com/ferdiebergado/eventsapi/internal/middleware"
	"github.com/ferdiebergado/eventsapi/internal/pkg/logging"
	"github.com/ferdiebergado/eventsapi/internal/platform/db"
	"github.com/ferdiebergado/eventsapi/internal/uploads"
	"github.com/ferdiebergado/goexpress"
	"github.com/ferdiebergado/gopherkit/env"
)

const (
	envFile = ".env"
	cfgFile = "config.json"
)

func Run(baseCtx context.Context) error {
	slog.Info("Initializing...")

	signalCtx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := loadEnvFile(); err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.SetupLogger(cfg.Log.Env, cfg.Log.Level, os.Stdout)

	dbConn, err := db.NewPostgresDB(signalCtx, cfg.DB)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	if cfg.DB.AutoMigrate {
		if err := db.Migrate(dbConn); err != nil {
			return err
		}
	}

	if err := uploads.EnsureDir(cfg.Uploads.Dir); err != nil {
		return err
	}

	middlewares := []func(http.Handler) http.Handler{
		middleware.InjectWriter,
		goexpress.RecoverFromPanic,
		middleware.LogRequest,
	}
	api := New(cfg, newProvider(dbConn), middlewares)

	if err := api.Start(signalCtx); err != nil {
		return fmt.Errorf("start server: %w", err)
	}

	return api.Shutdown()
}

// loadEnvFile reads .env outside production. The file is optional since the
// container gets its settings from the environment.
func loadEnvFile() error {
	if os.Getenv("ENV") == "production" {
		return nil
	}

	if _, err := os.Stat(envFile); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("No env file found.", "file", envFile)
			return nil
		}
		return fmt.Errorf("stat env file: %w", err)
	}

	if err := env.Load(envFile); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}
