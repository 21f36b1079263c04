package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func newRunCmd(load appLoader) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the agent until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			agent, release, err := app.agent(ctx, dryRun || app.cfg.DryRun)
			if err != nil {
				return err
			}
			defer release()

			if addr := app.cfg.Metrics.Addr; addr != "" {
				srv := serveMetrics(app, addr)
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
					defer cancel()
					_ = srv.Shutdown(shutdownCtx)
				}()
			}

			agent.Start(ctx)
			app.logger.Info("agent running", zap.Int("loops", agent.Loops()))

			<-ctx.Done()
			app.logger.Info("shutting down")
			agent.Stop()

			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Generate posts and replies without publishing them")

	return cmd
}

func serveMetrics(app *app, addr string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", app.metrics.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		app.logger.Info("serving metrics", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.logger.Error("metrics server stopped", zap.Error(err))
		}
	}()

	return srv
}
