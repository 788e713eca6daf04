package main

import (
	"context"
	"fmt"
	"time"

	"quotes/internal/config"
	"quotes/internal/quote"
	"quotes/internal/telemetry"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const shutdownTimeout = 5 * time.Second

type rootFlags struct {
	config   string
	endpoint string
	logLevel string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	root := &cobra.Command{
		Use:          "quotes",
		Short:        "Show a random quote with a refresh button",
		Long:         "quotes fetches a random quote from a JSON API and shows it in a single terminal screen. Press r to fetch another.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}

	root.PersistentFlags().StringVar(&flags.config, "config", "", "path to config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&flags.endpoint, "endpoint", "", "quote API endpoint (overrides config)")
	root.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	root.AddCommand(newFetchCmd(&flags))
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "quotes %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

// loadConfig loads the config file and environment with flags layered on
// top, then validates the result once.
func loadConfig(flags rootFlags) (*config.Config, error) {
	overrides := map[string]any{}
	if flags.endpoint != "" {
		overrides["quote.endpoint"] = flags.endpoint
	}
	if flags.logLevel != "" {
		overrides["log.level"] = flags.logLevel
	}
	cfg, err := config.LoadWithOverrides(flags.config, overrides)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// newService builds the tracing setup and the HTTP quote service.
func newService(ctx context.Context, cfg *config.Config, logger *log.Logger) (*quote.HTTPService, *telemetry.Tracing, error) {
	tracing, err := telemetry.New(ctx, telemetry.Config{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("setting up tracing: %w", err)
	}
	svc := quote.NewHTTPService(quote.HTTPServiceParams{
		Endpoint: cfg.Quote.Endpoint,
		Logger:   logger,
		Tracer:   tracing.Tracer(),
	})
	return svc, tracing, nil
}

func shutdownTracing(tracing *telemetry.Tracing, logger *log.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := tracing.Shutdown(ctx); err != nil {
		logger.Warn("flushing traces", "err", err)
	}
}
