// Package orderrepo persists the order aggregate. It maps between the
// domain model and the relational representation and implements
// ports.OrderRepository on top of GORM.
package orderrepo

import (
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"

	"time"

	"github.com/google/uuid"
)

// OrderDTO is the database row for an order aggregate.
type OrderDTO struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	CreatedBy    uuid.UUID     `gorm:"type:uuid;index"`
	Origin       CoordinateDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination  CoordinateDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Status       string        `gorm:"index"`
	CurrentJobID *uuid.UUID    `gorm:"type:uuid"`
	CreatedAt    time.Time
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CoordinateDTO stores a geographic point as a pair of double-precision
// columns.
type CoordinateDTO struct {
	Lat float64
	Lng float64
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var currentJobID *uuid.UUID
	if id := aggregate.CurrentJobID(); id != nil {
		raw := id.Bytes()
		currentJobID = &raw
	}

	return OrderDTO{
		ID:        aggregate.ID().Bytes(),
		CreatedBy: aggregate.CreatedBy().Bytes(),
		Origin: CoordinateDTO{
			Lat: aggregate.Origin().Lat(),
			Lng: aggregate.Origin().Lng(),
		},
		Destination: CoordinateDTO{
			Lat: aggregate.Destination().Lat(),
			Lng: aggregate.Destination().Lng(),
		},
		Status:       aggregate.Status().String(),
		CurrentJobID: currentJobID,
		CreatedAt:    aggregate.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	var currentJobID *kernel.UUID
	if dto.CurrentJobID != nil {
		jobID, jobErr := kernel.UUIDFromBytes((*dto.CurrentJobID)[:])
		if jobErr != nil {
			return nil, jobErr
		}
		currentJobID = &jobID
	}

	origin, err := kernel.NewCoordinate(dto.Origin.Lat, dto.Origin.Lng)
	if err != nil {
		return nil, err
	}

	destination, err := kernel.NewCoordinate(dto.Destination.Lat, dto.Destination.Lng)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, createdBy, origin, destination,
		status, currentJobID, dto.CreatedAt)
}
