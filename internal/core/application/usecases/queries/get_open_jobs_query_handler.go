package queries

import (
	"context"

	"dronedelivery/internal/core/domain/model/job"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenJobsQueryHandler reads the open job list with direct SQL.
type GetOpenJobsQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenJobsQueryHandler creates a handler bound to the given database
// connection.
func NewGetOpenJobsQueryHandler(db *gorm.DB) GetOpenJobsQueryHandler {
	return GetOpenJobsQueryHandler{db: db}
}

// Handle returns every Open job, oldest first.
func (h GetOpenJobsQueryHandler) Handle(
	ctx context.Context,
	query GetOpenJobsQuery,
) ([]GetOpenJobsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	jobs := make([]GetOpenJobsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			job_type,
			pickup_lat,
			pickup_lng,
			dropoff_lat,
			dropoff_lng,
			excluded_drone_id,
			created_at
		FROM jobs
		WHERE status = ?
		ORDER BY created_at ASC
	`, job.Open.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenJobsQueryResponse
		var id, orderID uuid.UUID
		var pickupLat, pickupLng, dropoffLat, dropoffLng float64
		var excludedDroneID uuid.NullUUID

		err = rows.Scan(
			&id,
			&orderID,
			&resp.Type,
			&pickupLat,
			&pickupLng,
			&dropoffLat,
			&dropoffLng,
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
