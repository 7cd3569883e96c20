package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"type-extractor/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "type-extractor",
	Short: "EVE Online type data extractor",
	Long: `Type Extractor builds the item type list used by the app.
It reads an installed game client or downloads the community static data
snapshot, and writes the result as JSON.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	// An interrupt cancels the context, aborting downloads and queries in flight.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := RootCmd.ExecuteContext(ctx)
	stop()

	if err != nil {
		// Use the application's standard logger for error reporting
		// We use "debug" level configuration to get ISO8601 timestamps (DevConfig) instead of Epoch (ProdConfig)
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
