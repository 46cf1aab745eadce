package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. The interface is small on purpose so
// callers stay decoupled from the queue backend; the postgres implementation
// makes the insert transactional when used through TxStorage.
type JobStorage interface {
	// AddJob enqueues a job with the given arguments. The returned bool is
	// false when a uniqueness constraint collapsed the insert into an
	// existing job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
