package queries

import (
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetOpenJobsQueryIsNotConstructed = errors.New(
	"GetOpenJobsQuery must be created via NewGetOpenJobsQuery constructor",
)

// GetOpenJobsQuery retrieves every Open job, oldest first, for drones
// browsing work to reserve directly.
type GetOpenJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenJobsQuery creates a query for the open job list.
func NewGetOpenJobsQuery() GetOpenJobsQuery {
	return GetOpenJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenJobsQueryIsNotConstructed)
}

// GetOpenJobsQueryResponse is the read model for one open job. The excluded
// drone is included so a drone can see up front that a handoff job will
// reject it.
type GetOpenJobsQueryResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	Type            string
	Pickup          kernel.Coordinate
	Dropoff         kernel.Coordinate
	ExcludedDroneID *kernel.UUID
	CreatedAt       time.Time
}
