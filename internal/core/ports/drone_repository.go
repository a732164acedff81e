package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
)

// DroneRepository defines the persistence contract for drone aggregates.
//
// Update is version-guarded like JobRepository.Update: the current job
// pointer is written both by reservations and by terminal job transitions,
// so stale writes are rejected with a Conflict error.
type DroneRepository interface {
	// Add persists a new drone aggregate to storage.
	Add(ctx context.Context, aggregate *drone.Drone) error

	// Update persists changes to an existing drone aggregate under the
	// version guard.
	Update(ctx context.Context, aggregate *drone.Drone) error

	// Get retrieves a drone aggregate by its unique identifier.
	// Returns a NotFound error if the drone does not exist.
	Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error)

	// GetByName retrieves a drone by its unique name.
	// Returns a NotFound error if no drone carries the name.
	GetByName(ctx context.Context, name string) (*drone.Drone, error)

	// GetAllServiceable retrieves drones whose status is Active or Fixed.
	GetAllServiceable(ctx context.Context) ([]*drone.Drone, error)
}
