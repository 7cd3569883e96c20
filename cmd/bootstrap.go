package cmd

import (
	"context"
	"fmt"

	"type-extractor/core/config"
	"type-extractor/core/logger"
	"type-extractor/core/metrics"
	"type-extractor/core/storage"
	"type-extractor/feature/types"

	"go.uber.org/zap"
)

// bootstrap loads the configuration and builds the run's logger.
func bootstrap(command string) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	logg, _ = logger.WithRunID(logg.With(zap.String("command", command)))
	zap.ReplaceGlobals(logg)

	return cfg, logg, nil
}

// finish records the run's duration and pushes metrics when a gateway is configured.
// A failed push is logged, never fatal.
func finish(cfg *config.Config, logg *zap.Logger, command string, timer *metrics.Timer, runErr error) {
	elapsed := timer.ObserveRun(command, runErr)
	if runErr == nil {
		logg.Info("Run complete", zap.Duration("elapsed", elapsed))
	}
	if err := metrics.Push(cfg.Metrics); err != nil {
		logg.Warn("Failed to push metrics", zap.Error(err))
	}
	_ = logg.Sync()
}

// publish uploads a produced file to the configured bucket.
func publish(ctx context.Context, cfg storage.Config, path string, logg *zap.Logger) error {
	client, err := storage.NewClient(cfg)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrIO, err)
	}

	info, err := storage.PublishFile(ctx, client, cfg.Bucket, cfg.ObjectName, path)
	if err != nil {
		return fmt.Errorf("%w: %w", types.ErrIO, err)
	}

	logg.Info("Published output",
		zap.String("bucket", info.Bucket),
		zap.String("object", info.Key),
		zap.Int64("size", info.Size),
	)
	return nil
}
