package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/remaimber-it/quizbank/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.ServerAddress = addr
		}
		logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		a, err := app.New(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer a.Close()
		return a.Serve(cfg)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides SERVER_ADDRESS env var)")
}
