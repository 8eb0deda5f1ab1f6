// Command server runs the events API.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ferdiebergado/eventsapi/internal/app"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	slog.Info("Starting events API...")

	if err := app.Run(context.Background()); err != nil {
		slog.Error("Events API stopped with an error.", "reason", err)
		os.Exit(1)
	}

	slog.Info("Events API shut down gracefully.")
}
