package queries

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllJobsQueryHandler reads the full job list with direct SQL.
type GetAllJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetAllJobsQueryHandler creates a handler bound to the given database
// connection.
func NewGetAllJobsQueryHandler(db *gorm.DB) GetAllJobsQueryHandler {
	return GetAllJobsQueryHandler{db: db}
}

// Handle returns every job, newest first.
func (h GetAllJobsQueryHandler) Handle(
	ctx context.Context,
	query GetAllJobsQuery,
) ([]GetAllJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetAllJobsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			job_type,
			status,
			pickup_lat,
			pickup_lng,
			dropoff_lat,
			dropoff_lng,
			assigned_drone_id,
			excluded_drone_id,
			created_at
		FROM jobs
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllJobsQueryResponse
		var id, orderID uuid.UUID
		var pickupLat, pickupLng, dropoffLat, dropoffLng float64
		var assignedDroneID, excludedDroneID uuid.NullUUID

		err = rows.Scan(
			&id,
			&orderID,
			&resp.Type,
			&resp.Status,
			&pickupLat,
			&pickupLng,
			&dropoffLat,
			&dropoffLng,
			&assignedDroneID,
			&excludedDroneID,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernelUUID(id)
		if err != nil {
			return nil, err
		}
		resp.OrderID, err = kernelUUID(orderID)
		if err != nil {
			return nil, err
		}

		resp.Pickup, err = kernel.NewCoordinate(pickupLat, pickupLng)
		if err != nil {
			return nil, err
		}
		resp.Dropoff, err = kernel.NewCoordinate(dropoffLat, dropoffLng)
		if err != nil {
			return nil, err
		}

		resp.AssignedDroneID, err = optionalKernelUUID(assignedDroneID)
		if err != nil {
			return nil, err
		}
		resp.ExcludedDroneID, err = optionalKernelUUID(excludedDroneID)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
