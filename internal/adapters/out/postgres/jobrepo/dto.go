// Package jobrepo persists the job aggregate. Besides the usual domain
// mapping it owns the optimistic version guard: every update carries the
// version the aggregate was read with, and a write against a stale version
// touches no rows and surfaces as a Conflict error.
package jobrepo

import (
	"time"

	"dronedelivery/internal/core/domain/model/job"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// JobDTO is the database row for a job aggregate.
type JobDTO struct {
	ID              uuid.UUID     `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID     `gorm:"type:uuid;index"`
	JobType         string
	Status          string        `gorm:"index"`
	Pickup          CoordinateDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff         CoordinateDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	AssignedDroneID *uuid.UUID    `gorm:"type:uuid"`
	ExcludedDroneID *uuid.UUID    `gorm:"type:uuid"`
	Version         int64
	ReservedAt      *time.Time
	StartedAt       *time.Time
	CompletedAt     *time.Time
	FailedAt        *time.Time
	CreatedAt       time.Time `gorm:"index"`
}

// TableName overrides GORM's default naming to use "jobs".
func (JobDTO) TableName() string {
	return "jobs"
}

// CoordinateDTO stores a geographic point as a pair of double-precision
// columns.
type CoordinateDTO struct {
	Lat float64
	Lng float64
}

func fromDomain(aggregate *job.Job) JobDTO {
	return JobDTO{
		ID:      aggregate.ID().Bytes(),
		OrderID: aggregate.OrderID().Bytes(),
		JobType: aggregate.Type().String(),
		Status:  aggregate.Status().String(),
		Pickup: CoordinateDTO{
			Lat: aggregate.PickupLocation().Lat(),
			Lng: aggregate.PickupLocation().Lng(),
		},
		Dropoff: CoordinateDTO{
			Lat: aggregate.DropoffLocation().Lat(),
			Lng: aggregate.DropoffLocation().Lng(),
		},
		AssignedDroneID: uuidPtr(aggregate.AssignedDroneID()),
		ExcludedDroneID: uuidPtr(aggregate.ExcludedDroneID()),
		Version:         aggregate.Version(),
		ReservedAt:      aggregate.ReservedAt(),
		StartedAt:       aggregate.StartedAt(),
		CompletedAt:     aggregate.CompletedAt(),
		FailedAt:        aggregate.FailedAt(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

func toDomain(dto JobDTO) (*job.Job, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	jobType, err := job.TypeFromString(dto.JobType)
	if err != nil {
		return nil, err
	}

	status, err := job.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewCoordinate(dto.Pickup.Lat, dto.Pickup.Lng)
	if err != nil {
		return nil, err
	}

	dropoff, err := kernel.NewCoordinate(dto.Dropoff.Lat, dto.Dropoff.Lng)
	if err != nil {
		return nil, err
	}

	assignedDroneID, err := kernelUUIDPtr(dto.AssignedDroneID)
	if err != nil {
		return nil, err
	}

	excludedDroneID, err := kernelUUIDPtr(dto.ExcludedDroneID)
	if err != nil {
		return nil, err
	}

	return job.RestoreJob(id, orderID, jobType, status, pickup, dropoff,
		assignedDroneID, excludedDroneID, dto.Version,
		dto.ReservedAt, dto.StartedAt, dto.CompletedAt, dto.FailedAt,
		dto.CreatedAt)
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
