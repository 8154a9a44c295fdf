package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage enqueues background jobs. Implementations persist the job in
// the same backend as the rest of the data so that, inside a transaction,
// a job only becomes visible once the surrounding transaction commits.
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. It returns false
	// when the job was skipped as a duplicate of an existing unique job.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
