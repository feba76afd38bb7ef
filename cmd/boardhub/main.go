// Command boardhub runs the board membership service and its
// maintenance tasks.
package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/boardhub/internal/config"
	"github.com/deppfellow/boardhub/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           config.ServiceName,
		Short:         "Board membership service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newPreviewEmailCmd(),
	)

	return root
}

// bootstrap loads the configuration and builds the logger shared by the
// commands that talk to infrastructure.
func bootstrap() (*config.Config, *logger.LoggerService, *zerolog.Logger, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, err
	}

	loggerService := logger.NewLoggerService(cfg.Observability)
	log := logger.NewLoggerWithService(cfg.Observability, loggerService)

	return cfg, loggerService, &log, nil
}
