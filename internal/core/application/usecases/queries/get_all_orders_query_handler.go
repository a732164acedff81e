package queries

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler reads the full order list with direct SQL.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler bound to the given database
// connection.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle returns every order, newest first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			created_by,
			status,
			origin_lat,
			origin_lng,
			destination_lat,
			destination_lng,
			current_job_id,
			created_at
		FROM orders
		ORDER BY created_at DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllOrdersQueryResponse
		var id, createdBy uuid.UUID
		var originLat, originLng, destinationLat, destinationLng float64
		var currentJobID uuid.NullUUID

		err = rows.Scan(
			&id,
			&createdBy,
			&resp.Status,
			&originLat,
			&originLng,
			&destinationLat,
			&destinationLng,
			&currentJobID,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernelUUID(id)
		if err != nil {
			return nil, err
		}
		resp.CreatedBy, err = kernelUUID(createdBy)
		if err != nil {
			return nil, err
		}

		resp.Origin, err = kernel.NewCoordinate(originLat, originLng)
		if err != nil {
			return nil, err
		}
		resp.Destination, err = kernel.NewCoordinate(destinationLat, destinationLng)
		if err != nil {
			return nil, err
		}

		resp.CurrentJobID, err = optionalKernelUUID(currentJobID)
		if err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
