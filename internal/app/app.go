// Package app wires the storage, services and HTTP server shared by the
// server binary and the CLI.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/remaimber-it/quizbank/internal/api"
	practicesession "github.com/remaimber-it/quizbank/internal/domain/practice_session"
	"github.com/remaimber-it/quizbank/internal/infrastructure/config"
	"github.com/remaimber-it/quizbank/internal/ingest"
	"github.com/remaimber-it/quizbank/internal/service"
	"github.com/remaimber-it/quizbank/internal/spreadsheet"
	"github.com/remaimber-it/quizbank/internal/store"

	_ "github.com/remaimber-it/quizbank/docs" // generated swagger docs
)

// App is the wired dependency graph.
type App struct {
	DB       *store.SQLStore
	Repo     *store.Repository
	Banks    *service.BankService
	Practice *service.PracticeService
	Logger   *slog.Logger
}

// New opens the configured database and builds the services on top of it.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	db, err := store.Open(ctx, store.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	repo := store.NewRepository(db)
	ingester := ingest.NewService(repo, spreadsheet.NewDecoder(), logger)

	practiceCfg := practicesession.DefaultConfig()
	practiceCfg.AdvanceDelay = cfg.AdvanceDelay
	practiceCfg.SwipeCooldown = cfg.SwipeCooldown

	return &App{
		DB:       db,
		Repo:     repo,
		Banks:    service.NewBankService(repo, ingester, logger, cfg.ImportWorkers),
		Practice: service.NewPracticeService(repo, repo, practiceCfg, logger),
		Logger:   logger,
	}, nil
}

func (a *App) Close() error {
	return a.DB.Close()
}

// Handler returns the full HTTP handler chain: Logging → CORS → mux.
func (a *App) Handler(cfg *config.Config) http.Handler {
	handler := api.NewHandler(a.Banks, a.Practice, a.Logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", api.Health)
	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	return api.Logging(a.Logger)(api.CORS(cfg.CORSOrigins)(mux))
}

// Serve runs the HTTP server until SIGINT/SIGTERM, then shuts it down
// within cfg.ShutdownTimeout.
func (a *App) Serve(cfg *config.Config) error {
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           a.Handler(cfg),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		a.Logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			a.Logger.Error("server forced to shutdown", "error", err)
		}
	}()

	a.Logger.Info("starting server", "address", cfg.ServerAddress, "db_driver", cfg.DBDriver)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
