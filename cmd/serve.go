package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"tracker/internal/api"
	"tracker/internal/api/handler/v1handler"
	"tracker/internal/checklist"
	"tracker/internal/config"
	"tracker/internal/snapshot"
	"tracker/internal/tracker"
	"tracker/internal/worker"
	"tracker/pkg/logger"
	"tracker/pkg/summarizer"
	"tracker/pkg/summarizer/openaichat"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// setupServer starts the HTTP server in the background and returns a function
// that shuts it down.
func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) (func(ctx context.Context), error) {
	server, err := api.NewServer(deps, api.NewOptions(cfg))
	if err != nil {
		return nil, err
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}, nil
}

// runServe wires storage, the tracker service, background workers and the API
// server, then blocks until ctx is canceled and shuts everything down.
func runServe(ctx context.Context, cfg *config.Config) error {
	strg, closeStrg := getPostgres(ctx, cfg)
	defer closeStrg()

	items, err := checklist.Load(cfg.Tracker.ChecklistPath)
	if err != nil {
		return err
	}

	svc := tracker.New(strg, tracker.NewOptions(cfg, items))
	writer := snapshot.NewWriter(strg, snapshot.NewOptions(cfg))

	var summaryClient summarizer.Client
	if cfg.Summarizer.APIKey != "" {
		summaryClient = openaichat.New(&http.Client{Timeout: cfg.Summarizer.Timeout},
			cfg.Summarizer.Endpoint, cfg.Summarizer.APIKey, cfg.Summarizer.Model)
	}

	riverClient, err := worker.Start(ctx, strg.Pool, writer, cfg.Snapshot.Interval)
	if err != nil {
		return err
	}

	stopWebserver, err := setupServer(ctx, cfg, api.Deps{Deps: v1handler.Deps{
		Tracker:        svc,
		Storage:        strg,
		Summarizer:     summaryClient,
		RiskWindowDays: cfg.Tracker.RiskWindowDays,
	}})
	if err != nil {
		return err
	}

	// wait for interrupt
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
	defer cancel()

	logger.Info(shutdownCtx, "stopping background workers...")
	if err := riverClient.Stop(shutdownCtx); err != nil {
		logger.Error(shutdownCtx, "could not stop background workers", zap.Error(err))
	}
	stopWebserver(shutdownCtx)

	return nil
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			if err := runServe(ctx, cfg); err != nil {
				logger.Fatal(ctx, "could not start the service", zap.Error(err))
			}
		},
	}

	return cmd
}
