package queries

import (
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetAllJobsQueryIsNotConstructed = errors.New(
	"GetAllJobsQuery must be created via NewGetAllJobsQuery constructor",
)

// GetAllJobsQuery retrieves every job in the system for operators.
type GetAllJobsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllJobsQuery creates a query for the full job list.
func NewGetAllJobsQuery() GetAllJobsQuery {
	return GetAllJobsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllJobsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllJobsQueryIsNotConstructed)
}

// GetAllJobsQueryResponse is the operator read model for one job.
type GetAllJobsQueryResponse struct {
	ID              kernel.UUID
	OrderID         kernel.UUID
	Type            string
	Status          string
	Pickup          kernel.Coordinate
	Dropoff         kernel.Coordinate
	AssignedDroneID *kernel.UUID
	ExcludedDroneID *kernel.UUID
	CreatedAt       time.Time
}
