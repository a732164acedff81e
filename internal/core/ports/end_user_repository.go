package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/enduser"
	"dronedelivery/internal/core/domain/model/kernel"
)

// EndUserRepository defines the persistence contract for end users.
type EndUserRepository interface {
	// Add persists a new end user to storage.
	Add(ctx context.Context, entity *enduser.EndUser) error

	// Get retrieves an end user by its unique identifier.
	// Returns a NotFound error if the user does not exist.
	Get(ctx context.Context, id kernel.UUID) (*enduser.EndUser, error)

	// GetByName retrieves an end user by its unique name.
	// Returns a NotFound error if no user carries the name.
	GetByName(ctx context.Context, name string) (*enduser.EndUser, error)
}
