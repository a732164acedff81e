package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCurrentJobQueryHandler resolves a drone's current job with direct SQL.
type GetCurrentJobQueryHandler struct {
	db *gorm.DB
}

// NewGetCurrentJobQueryHandler creates a handler bound to the given
// database connection.
func NewGetCurrentJobQueryHandler(db *gorm.DB) GetCurrentJobQueryHandler {
	return GetCurrentJobQueryHandler{db: db}
}

// Handle returns the drone's current job. An unknown drone is NotFound; a
// known drone without a job is InvalidState.
func (h GetCurrentJobQueryHandler) Handle(
	ctx context.Context,
	query GetCurrentJobQuery,
) (GetCurrentJobQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCurrentJobQueryResponse{}, err
	}

	var currentJobID uuid.NullUUID
	row := h.db.WithContext(ctx).Raw(`
		SELECT current_job_id FROM drones WHERE id = ?
	`, query.DroneID().Bytes()).Row()
	if err := row.Scan(&currentJobID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCurrentJobQueryResponse{}, errs.NewNotFoundError(
				"drone", query.DroneID().String())
		}
		return GetCurrentJobQueryResponse{}, err
	}

	if !currentJobID.Valid {
		return GetCurrentJobQueryResponse{}, errs.NewInvalidStateError(
			fmt.Sprintf("drone %s has no current job", query.DroneID()))
	}

	var resp GetCurrentJobQueryResponse
	var id, orderID uuid.UUID
	var pickupLat, pickupLng, dropoffLat, dropoffLng float64

	row = h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			job_type,
			status,
			pickup_lat,
			pickup_lng,
			dropoff_lat,
			dropoff_lng,
			created_at
		FROM jobs
		WHERE id = ?
	`, currentJobID.UUID).Row()
	err := row.Scan(
		&id,
		&orderID,
		&resp.Type,
		&resp.Status,
		&pickupLat,
		&pickupLng,
		&dropoffLat,
		&dropoffLng,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetCurrentJobQueryResponse{}, errs.NewNotFoundError(
				"job", currentJobID.UUID.String())
		}
		return GetCurrentJobQueryResponse{}, err
	}

	resp.ID, err = kernelUUID(id)
	if err != nil {
		return GetCurrentJobQueryResponse{}, err
	}
	resp.OrderID, err = kernelUUID(orderID)
	if err != nil {
		return GetCurrentJobQueryResponse{}, err
	}

	resp.Pickup, err = kernel.NewCoordinate(pickupLat, pickupLng)
	if err != nil {
		return GetCurrentJobQueryResponse{}, err
	}
	resp.Dropoff, err = kernel.NewCoordinate(dropoffLat, dropoffLng)
	if err != nil {
		return GetCurrentJobQueryResponse{}, err
	}

	return resp, nil
}
