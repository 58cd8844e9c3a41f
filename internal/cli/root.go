// Package cli implements the quizbank command line.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/quizbank/internal/app"
	"github.com/remaimber-it/quizbank/internal/infrastructure/config"
)

var rootCmd = &cobra.Command{
	Use:           "quizbank",
	Short:         "Import question banks and serve the practice API",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Database DSN or SQLite file path (overrides DB_DSN env var)")
	rootCmd.PersistentFlags().String("driver", "", "Database driver: sqlite or postgres (overrides DB_DRIVER env var)")

	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig reads the environment, then applies --db and --driver.
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg := config.Load()
	if dsn, _ := cmd.Flags().GetString("db"); dsn != "" {
		cfg.DBDSN = dsn
	}
	if driver, _ := cmd.Flags().GetString("driver"); driver != "" {
		cfg.DBDriver = driver
	}
	return cfg
}

// openApp wires the application for a one-shot command. Logs go to stderr
// so command output stays clean.
func openApp(cmd *cobra.Command) (*app.App, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	return app.New(cmd.Context(), loadConfig(cmd), logger)
}
