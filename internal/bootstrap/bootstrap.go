// Package bootstrap runs a two-phase startup sequence: a prepare phase that
// must succeed before the launch phase is ever invoked. The `up` subcommand
// uses it to gate the API server behind database migrations.
package bootstrap

import (
	"context"
	"fmt"
	"tracker/pkg/logger"

	"go.uber.org/zap"
)

// Phase is one step of the startup sequence.
type Phase func(ctx context.Context) error

// Sequence couples a prepare phase to a launch phase. Launch runs at most
// once and only after prepare returned nil.
type Sequence struct {
	name    string
	prepare Phase
	launch  Phase
}

// NewSequence creates a Sequence. name appears in the startup log lines.
func NewSequence(name string, prepare Phase, launch Phase) *Sequence {
	return &Sequence{
		name:    name,
		prepare: prepare,
		launch:  launch,
	}
}

// Run executes prepare and then launch. A prepare error is logged and
// returned without invoking launch. Otherwise Run returns whatever launch
// returns.
func (s *Sequence) Run(ctx context.Context) error {
	ctx = logger.WithFields(ctx, zap.String("sequence", s.name))
	logger.Info(ctx, "Starting up")

	logger.Info(ctx, "Running prepare phase")
	if err := s.prepare(ctx); err != nil {
		logger.Error(ctx, "Prepare phase failed, not launching", zap.Error(err))

		return fmt.Errorf("could not prepare: %w", err)
	}

	logger.Info(ctx, "Prepare phase complete, launching")

	return s.launch(ctx)
}
