package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/syntrixbase/vidlist/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		slog.Info("Starting vidlist...")
		mgr := services.NewManager(cfg, slog.Default())

		initCtx, cancel := context.WithTimeout(ctx, cfg.Storage.Mongo.ConnectTimeout)
		defer cancel()
		if err := mgr.Init(initCtx); err != nil {
			return err
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return mgr.Start(gctx)
		})
		g.Go(func() error {
			<-gctx.Done()
			slog.Info("Shutting down...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
			defer shutdownCancel()
			return mgr.Shutdown(shutdownCtx)
		})

		if err := g.Wait(); err != nil {
			return err
		}
		slog.Info("Shutdown complete")
		return nil
	},
}
