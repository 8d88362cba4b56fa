package cli

import (
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carbonscope/carbonscope/internal/engine"
	"github.com/carbonscope/carbonscope/internal/server"
)

func newServeCmd(cfgPath *string) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long:  "Serve exposes calculation, aggregation and factor-table endpoints over HTTP,\nplus /healthz and Prometheus metrics on /metrics.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if listen != "" {
				cfg.Listen = listen
			}

			logger := zerolog.Ctx(cmd.Context())
			calc := engine.NewCalculator(nil, cfg.EnginePolicy())
			srv := server.New(cfg.Listen, calc, *logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info().Str("listen", cfg.Listen).Msg("starting server")
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (overrides config)")

	return cmd
}
