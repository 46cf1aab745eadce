package snapshot

import (
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// Args contains the arguments for a snapshot job submitted to River. The job
// carries no payload; uniqueness keeps restarts from stacking duplicates.
type Args struct{}

// Kind returns the River job kind used to register and dispatch the snapshot
// worker.
func (Args) Kind() string { return "TakeSnapshotJob" }

// InsertOpts returns the River options that control how the job is enqueued.
// Uniqueness over a short window collapses the startup snapshot with any
// periodic one scheduled around the same time.
func (Args) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: time.Hour,
			ByState: []rivertype.JobState{
				rivertype.JobStateAvailable,
				rivertype.JobStatePending,
				rivertype.JobStateRunning,
				rivertype.JobStateRetryable,
				rivertype.JobStateScheduled,
			},
		},
	}
}
