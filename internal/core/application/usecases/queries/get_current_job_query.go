package queries

import (
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetCurrentJobQueryIsNotConstructed = errors.New(
	"GetCurrentJobQuery must be created via NewGetCurrentJobQuery constructor",
)

// GetCurrentJobQuery retrieves the job a drone currently holds. A drone
// with no current job is an invalid state for this query, not an empty
// result.
type GetCurrentJobQuery struct {
	droneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCurrentJobQuery creates a query for the given drone.
func NewGetCurrentJobQuery(droneID kernel.UUID) (GetCurrentJobQuery, error) {
	if err := droneID.Validate(); err != nil {
		return GetCurrentJobQuery{}, err
	}
	return GetCurrentJobQuery{
		droneID: droneID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// DroneID returns the requesting drone.
func (q GetCurrentJobQuery) DroneID() kernel.UUID {
	return q.droneID
}

// Validate ensures the query was created through the constructor.
func (q GetCurrentJobQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentJobQueryIsNotConstructed)
}

// GetCurrentJobQueryResponse is the read model for the drone's current job.
type GetCurrentJobQueryResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Type      string
	Status    string
	Pickup    kernel.Coordinate
	Dropoff   kernel.Coordinate
	CreatedAt time.Time
}
