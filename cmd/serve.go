package main

import (
	"context"
	"debroglie/internal/api"
	"debroglie/internal/api/handler/v1handler"
	"debroglie/pkg/logger"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCommand constructs the 'serve' subcommand that exposes the calculator
// over the v1 HTTP API until interrupted.
func serveCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the HTTP API server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			registry := prometheus.NewRegistry()
			registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

			mp, err := api.NewMeterProvider(registry)
			if err != nil {
				return err //nolint: wrapcheck
			}
			defer func() {
				if err := mp.Shutdown(context.Background()); err != nil {
					logger.Warn(ctx, "could not shutdown meter provider", zap.Error(err))
				}
			}()

			calc, err := a.newCalculator(ctx, mp)
			if err != nil {
				return err
			}

			server, err := api.NewServer(api.Deps{Deps: v1handler.Deps{Calculator: calc}},
				api.NewOptions(a.cfg, registry, mp))
			if err != nil {
				return fmt.Errorf("could not create webserver: %w", err)
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			// wait for interrupt or a listener failure
			select {
			case <-ctx.Done():
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("could not start webserver: %w", err)
				}
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.GracefulShutdownTimeout)
			defer cancel()

			logger.Info(ctx, "stopping webserver...")
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop webserver", zap.Error(err))
			}

			return nil
		},
	}

	return cmd
}
