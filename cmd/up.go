package main

import (
	"context"
	"os/signal"
	"syscall"
	"tracker/internal/bootstrap"
	"tracker/internal/config"
	"tracker/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// upCommand constructs the 'up' subcommand: a one-shot launcher that migrates
// the database and, only on success, starts the API server with its workers.
func upCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Migrates the database, then starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			sequence := bootstrap.NewSequence("up",
				func(ctx context.Context) error { return runMigrations(ctx, cfg) },
				func(ctx context.Context) error { return runServe(ctx, cfg) },
			)
			if err := sequence.Run(ctx); err != nil {
				logger.Fatal(ctx, "could not bring the service up", zap.Error(err))
			}
		},
	}

	return cmd
}
