package queries

import (
	"context"
	"database/sql"

	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllDronesQueryHandler reads the fleet list with direct SQL.
type GetAllDronesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDronesQueryHandler creates a handler bound to the given database
// connection.
func NewGetAllDronesQueryHandler(db *gorm.DB) GetAllDronesQueryHandler {
	return GetAllDronesQueryHandler{db: db}
}

// Handle returns every drone sorted by name.
func (h GetAllDronesQueryHandler) Handle(
	ctx context.Context,
	query GetAllDronesQuery,
) ([]GetAllDronesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drones := make([]GetAllDronesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			status,
			last_lat,
			last_lng,
			last_heartbeat_at,
			current_job_id,
			created_at
		FROM drones
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllDronesQueryResponse
		var id uuid.UUID
		var lastLat, lastLng sql.NullFloat64
		var lastHeartbeatAt sql.NullTime
		var currentJobID uuid.NullUUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Status,
			&lastLat,
			&lastLng,
			&lastHeartbeatAt,
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

		if lastLat.Valid && lastLng.Valid {
			coordinate, coordErr := kernel.NewCoordinate(lastLat.Float64, lastLng.Float64)
			if coordErr != nil {
				return nil, coordErr
			}
			resp.LastCoordinate = &coordinate
		}

		if lastHeartbeatAt.Valid {
			heartbeatAt := lastHeartbeatAt.Time
			resp.LastHeartbeatAt = &heartbeatAt
		}

		resp.CurrentJobID, err = optionalKernelUUID(currentJobID)
		if err != nil {
			return nil, err
		}

		drones = append(drones, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return drones, nil
}
