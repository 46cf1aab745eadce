package main

import (
	"context"
	"os"
	"tracker/internal/checklist"
	"tracker/internal/config"
	"tracker/internal/exchange"
	"tracker/internal/tracker"
	"tracker/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCommand constructs the 'import' subcommand that bulk-loads projects
// from a CSV file in the flat exchange schema.
func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Bulk imports projects from a CSV file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			file, err := os.Open(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not open import file", zap.Error(err))
			}
			defer func() { _ = file.Close() }()

			batch, err := exchange.ParseCSV(file)
			if err != nil {
				logger.Fatal(ctx, "could not parse import file", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			items, err := checklist.Load(cfg.Tracker.ChecklistPath)
			if err != nil {
				logger.Fatal(ctx, "could not load master checklist", zap.Error(err))
			}

			svc := tracker.New(strg, tracker.NewOptions(cfg, items))
			summary, err := svc.Import(ctx, batch)
			if err != nil {
				logger.Fatal(ctx, "import failed", zap.Error(err))
			}

			logger.Info(ctx, "import finished", zap.Stringer("summary", summary))
		},
	}

	return cmd
}
