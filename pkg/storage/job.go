package storage

import (
	"context"

	"github.com/riverqueue/river"
)

// JobStorage defines the minimal interface for enqueueing background jobs.
// Implementations persist the job into the underlying queue backend; the
// insert participates in any surrounding transaction when the backend
// supports it. The boolean result reports whether a job was actually added
// (false when uniqueness constraints matched an existing job).
type JobStorage interface {
	// AddJob enqueues a new job with the given arguments. opts may be nil to use
	// the defaults from the job's InsertOpts.
	AddJob(ctx context.Context, args river.JobArgs, opts *river.InsertOpts) (bool, error)
}
