package main

import (
	"context"
	"fmt"

	"quotes/internal/config"
	"quotes/internal/logging"
	"quotes/internal/ui"
	"quotes/internal/viewmodel"
)

func runTUI(ctx context.Context, cfg *config.Config) error {
	logger, closer, err := logging.NewFile(logging.FileConfig{
		Path:       cfg.Log.File,
		Level:      cfg.Log.Level,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = closer.Close() }()

	svc, tracing, err := newService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTracing(tracing, logger)

	logger.Info("starting", "version", version, "endpoint", svc.Endpoint(), "tracing", tracing.Enabled())

	vm := viewmodel.New(svc,
		viewmodel.WithLogger(logger),
		viewmodel.WithContext(ctx),
	)
	return ui.Run(ctx, ui.RunParams{ViewModel: vm, Logger: logger})
}
