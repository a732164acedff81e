package queries

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCreatorOrdersQueryHandler reads a creator's orders with a direct SQL
// query.
type GetCreatorOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCreatorOrdersQueryHandler creates a handler bound to the given
// database connection.
func NewGetCreatorOrdersQueryHandler(db *gorm.DB) GetCreatorOrdersQueryHandler {
	return GetCreatorOrdersQueryHandler{db: db}
}

// Handle returns the creator's orders, newest first.
func (h GetCreatorOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCreatorOrdersQuery,
) ([]GetCreatorOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCreatorOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			origin_lat,
			origin_lng,
			destination_lat,
			destination_lng,
			current_job_id,
			created_at
		FROM orders
		WHERE created_by = ?
		ORDER BY created_at DESC
	`, query.CreatorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetCreatorOrdersQueryResponse
		var id uuid.UUID
		var originLat, originLng, destinationLat, destinationLng float64
		var currentJobID uuid.NullUUID

		err = rows.Scan(
			&id,
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
