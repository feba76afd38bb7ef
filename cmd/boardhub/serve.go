package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/deppfellow/boardhub/internal/database"
	"github.com/deppfellow/boardhub/internal/handler"
	"github.com/deppfellow/boardhub/internal/repository"
	"github.com/deppfellow/boardhub/internal/router"
	"github.com/deppfellow/boardhub/internal/server"
	"github.com/deppfellow/boardhub/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

func newServeCmd() *cobra.Command {
	var skipMigrations bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the notification workers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if !skipMigrations {
				if err := database.Migrate(ctx, log, cfg); err != nil {
					return err
				}
			}

			srv, err := server.New(cfg, log, loggerService)
			if err != nil {
				return fmt.Errorf("failed to initialize server: %w", err)
			}

			return run(ctx, srv, log, func() error {
				repos := repository.NewRepositories(srv)
				services, err := service.NewServices(srv, repos)
				if err != nil {
					return fmt.Errorf("failed to create services: %w", err)
				}

				handlers := handler.NewHandlers(srv, services)
				srv.SetupHTTPServer(router.NewRouter(srv, handlers))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&skipMigrations, "skip-migrations", false, "do not apply pending migrations on start")

	return cmd
}

// run wires the HTTP stack, then serves until ctx is cancelled or the
// listener fails. srv is shut down on every return path, including a
// failed wire.
func run(ctx context.Context, srv *server.Server, log *zerolog.Logger, wire func() error) (err error) {
	defer func() {
		log.Info().Msg("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if shutdownErr := srv.Shutdown(shutdownCtx); shutdownErr != nil {
			err = errors.Join(err, fmt.Errorf("server forced to shutdown: %w", shutdownErr))
			return
		}

		log.Info().Msg("server exited properly")
	}()

	if err := wire(); err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Start()
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
		return nil
	}
}
