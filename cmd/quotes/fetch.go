package main

import (
	"fmt"

	"quotes/internal/logging"
	"quotes/internal/quote"

	"github.com/spf13/cobra"
)

func newFetchCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Fetch one quote and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*flags)
			if err != nil {
				return err
			}
			logger := logging.New(cmd.ErrOrStderr(), cfg.Log.Level)

			svc, tracing, err := newService(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			defer shutdownTracing(tracing, logger)

			q, err := svc.FetchRandomQuote(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching quote: %s", quote.Describe(err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s — %s\n", q.Content, q.Author)
			return nil
		},
	}
}
