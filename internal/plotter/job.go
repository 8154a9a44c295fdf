package plotter

import (
	"curvelab/pkg/domain"
	"time"

	"github.com/google/uuid"
	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
)

// RenderJobArgs asks the worker to compute the dataset of one scenario.
type RenderJobArgs struct {
	// ScenarioID is unique so that at most one render per scenario is queued.
	ScenarioID uuid.UUID `json:"scenario_id" river:"unique"`

	maxAttempts     int
	uniqueJobPeriod time.Duration
}

// NewRenderJobArgs builds the job for id with the retry and uniqueness
// settings of opts.
func NewRenderJobArgs(id domain.ScenarioID, opts Options) RenderJobArgs {
	return RenderJobArgs{
		ScenarioID:      uuid.UUID(id),
		maxAttempts:     opts.MaxAttempts,
		uniqueJobPeriod: opts.UniqueRenderPeriod,
	}
}

// Kind returns the River job kind used to register and dispatch the render worker.
func (args RenderJobArgs) Kind() string { return "RenderScenarioJob" }

// InsertOpts returns the retry limit and the uniqueness constraint.
func (args RenderJobArgs) InsertOpts() river.InsertOpts {
	return river.InsertOpts{
		MaxAttempts: args.maxAttempts,
		UniqueOpts: river.UniqueOpts{
			ByArgs:   true,
			ByPeriod: args.uniqueJobPeriod,
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
