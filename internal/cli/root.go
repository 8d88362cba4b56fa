// Package cli wires the carbonscope commands: single-source calculation,
// batch aggregation, the HTTP server, and factor-table inspection.
package cli

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/carbonscope/carbonscope/internal/config"
)

// NewRootCmd creates the root carbonscope command and registers every
// subcommand. ver is stamped at build time.
func NewRootCmd(ver string) *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "carbonscope",
		Short:         "GHG emission calculation engine",
		Long:          "carbonscope computes Scope 1, Scope 2 (location and market) and Scope 3 emissions\nfrom activity records, with data-quality scoring and facility aggregation.",
		Version:       ver,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: `  # Calculate emissions for sources in a JSON file
  carbonscope calculate --input sources.json

  # Aggregate with equity-share weighting
  carbonscope calculate --input sources.json --facilities facilities.json --format table

  # Run the HTTP API
  carbonscope serve --listen :8080

  # Inspect the built-in factor tables
  carbonscope factors list
  carbonscope factors show fuel`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			debug, _ := cmd.Flags().GetBool("debug")
			setupLogging(cmd, debug)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (YAML)")

	cmd.AddCommand(
		newCalculateCmd(&cfgPath),
		newServeCmd(&cfgPath),
		newFactorsCmd(),
		newDQICmd(),
	)

	return cmd
}

// loadConfig resolves the effective configuration: defaults, then the
// config file when one was named, then environment overrides.
func loadConfig(path string) (config.Config, error) {
	return config.Load(path)
}

func setupLogging(cmd *cobra.Command, debug bool) {
	level := zerolog.InfoLevel
	if v := os.Getenv(config.EnvLogLevel); v != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			level = parsed
		}
	}
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
		Level(level).
		With().Timestamp().Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))
}
