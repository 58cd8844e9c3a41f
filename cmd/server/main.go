package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/remaimber-it/quizbank/internal/app"
	"github.com/remaimber-it/quizbank/internal/infrastructure/config"
)

// @title           Quizbank API
// @version         1.0
// @description     Question bank ingestion and practice sessions: import banks, practice them and edit them in place.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	a, err := app.New(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	// ── Server ──────────────────────────────────────────────────────
	if err := a.Serve(cfg); err != nil {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}
