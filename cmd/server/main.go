// Command server runs the legal-process HTTP API.
//
// Configuration comes from CONFIG_PATH (default ./config.yaml) and
// environment variables; run `legalctl config` for the full list.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/MATEOCAIZA/ProyectoFInal/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		slog.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
