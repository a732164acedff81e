package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/job"
	"dronedelivery/internal/core/domain/model/kernel"
)

// JobRepository defines the persistence contract for job aggregates.
//
// Update enforces optimistic concurrency: the write succeeds only if the
// stored version still matches the version the aggregate was read with, and
// fails with a Conflict error otherwise. This is the chokepoint that lets
// racing reservations resolve to exactly one winner.
type JobRepository interface {
	// Add persists a new job aggregate to storage.
	Add(ctx context.Context, aggregate *job.Job) error

	// Update persists changes to an existing job aggregate under the
	// version guard. Returns a Conflict error when the stored version
	// moved since the aggregate was read.
	Update(ctx context.Context, aggregate *job.Job) error

	// Get retrieves a job aggregate by its unique identifier.
	// Returns a NotFound error if the job does not exist.
	Get(ctx context.Context, id kernel.UUID) (*job.Job, error)

	// GetAllOpenOrderByCreatedAt retrieves every Open job, oldest first,
	// so no job is starved by newer ones.
	GetAllOpenOrderByCreatedAt(ctx context.Context) ([]*job.Job, error)
}
