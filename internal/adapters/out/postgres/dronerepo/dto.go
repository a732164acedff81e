// Package dronerepo persists the drone aggregate. Drone updates run under
// the same optimistic version guard as job updates because the current job
// pointer is written from several concurrent paths.
package dronerepo

import (
	"time"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DroneDTO is the database row for a drone aggregate.
type DroneDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"uniqueIndex"`
	Status          string    `gorm:"index"`
	LastLat         *float64
	LastLng         *float64
	LastHeartbeatAt *time.Time
	CurrentJobID    *uuid.UUID `gorm:"type:uuid"`
	Version         int64
	CreatedAt       time.Time
}

// TableName overrides GORM's default naming to use "drones".
func (DroneDTO) TableName() string {
	return "drones"
}

func fromDomain(aggregate *drone.Drone) DroneDTO {
	var lastLat, lastLng *float64
	if coordinate := aggregate.LastCoordinate(); coordinate != nil {
		lat := coordinate.Lat()
		lng := coordinate.Lng()
		lastLat = &lat
		lastLng = &lng
	}

	var currentJobID *uuid.UUID
	if id := aggregate.CurrentJobID(); id != nil {
		raw := id.Bytes()
		currentJobID = &raw
	}

	return DroneDTO{
		ID:              aggregate.ID().Bytes(),
		Name:            aggregate.Name(),
		Status:          aggregate.Status().String(),
		LastLat:         lastLat,
		LastLng:         lastLng,
		LastHeartbeatAt: aggregate.LastHeartbeatAt(),
		CurrentJobID:    currentJobID,
		Version:         aggregate.Version(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

func toDomain(dto DroneDTO) (*drone.Drone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := drone.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var lastCoordinate *kernel.Coordinate
	if dto.LastLat != nil && dto.LastLng != nil {
		coordinate, coordErr := kernel.NewCoordinate(*dto.LastLat, *dto.LastLng)
		if coordErr != nil {
			return nil, coordErr
		}
		lastCoordinate = &coordinate
	}

	var currentJobID *kernel.UUID
	if dto.CurrentJobID != nil {
		jobID, jobErr := kernel.UUIDFromBytes((*dto.CurrentJobID)[:])
		if jobErr != nil {
			return nil, jobErr
		}
		currentJobID = &jobID
	}

	return drone.RestoreDrone(id, dto.Name, status, lastCoordinate,
		dto.LastHeartbeatAt, currentJobID, dto.Version, dto.CreatedAt)
}
