package queries

import (
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetAllDronesQueryIsNotConstructed = errors.New(
	"GetAllDronesQuery must be created via NewGetAllDronesQuery constructor",
)

// GetAllDronesQuery retrieves every drone in the fleet for operators.
type GetAllDronesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDronesQuery creates a query for the full fleet list.
func NewGetAllDronesQuery() GetAllDronesQuery {
	return GetAllDronesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDronesQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDronesQueryIsNotConstructed)
}

// GetAllDronesQueryResponse is the operator read model for one drone.
// Location and heartbeat are nil for drones that never reported in.
type GetAllDronesQueryResponse struct {
	ID              kernel.UUID
	Name            string
	Status          string
	LastCoordinate  *kernel.Coordinate
	LastHeartbeatAt *time.Time
	CurrentJobID    *kernel.UUID
	CreatedAt       time.Time
}
