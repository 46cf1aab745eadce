package worker

import (
	"context"
	"fmt"
	"tracker/internal/snapshot"
	"tracker/pkg/logger"

	"github.com/riverqueue/river"
	"go.uber.org/zap"
)

// SnapshotWorker is a River worker that materializes one portfolio snapshot
// per job. The heavy lifting lives in snapshot.Writer; the worker only adds
// job-scoped logging and error wrapping.
type SnapshotWorker struct {
	river.WorkerDefaults[snapshot.Args]

	writer *snapshot.Writer
}

// NewSnapshotWorker constructs a SnapshotWorker using the provided writer.
func NewSnapshotWorker(writer *snapshot.Writer) *SnapshotWorker {
	return &SnapshotWorker{
		writer: writer,
	}
}

// Work takes one snapshot. Failures are returned so River retries the job.
func (s *SnapshotWorker) Work(ctx context.Context, job *river.Job[snapshot.Args]) error {
	ctx = logger.WithFields(ctx, zap.Int64("jobID", job.ID))

	path, err := s.writer.Take(ctx)
	if err != nil {
		logger.Error(ctx, "error taking snapshot", zap.Error(err))

		return fmt.Errorf("could not take snapshot: %w", err)
	}

	logger.Info(ctx, "snapshot taken", zap.String("path", path))

	return nil
}
