package http

import (
	"time"

	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/kernel"
)

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CoordinatePayload carries a geographic point over the wire.
type CoordinatePayload struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TokenRequest asks for a signed access token for the named identity.
type TokenRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// TokenResponse carries the signed access token.
type TokenResponse struct {
	Token string `json:"token"`
}

// SubmitOrderRequest is the body of POST /api/v1/orders.
type SubmitOrderRequest struct {
	Origin      CoordinatePayload `json:"origin"`
	Destination CoordinatePayload `json:"destination"`
}

// SubmitOrderResponse returns the identifier of the accepted order.
type SubmitOrderResponse struct {
	ID string `json:"id"`
}

// UpdateOrderRequest is the body of PATCH /api/v1/admin/orders/:id.
// Omitted fields are left unchanged.
type UpdateOrderRequest struct {
	Origin      *CoordinatePayload `json:"origin,omitempty"`
	Destination *CoordinatePayload `json:"destination,omitempty"`
}

// SetDroneStatusRequest is the body of PUT /api/v1/admin/drones/:id/status.
type SetDroneStatusRequest struct {
	Status string `json:"status"`
}

// HeartbeatRequest reports a drone's current position.
type HeartbeatRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// OrderPayload is the creator-facing view of an order.
type OrderPayload struct {
	ID           string            `json:"id"`
	Status       string            `json:"status"`
	Origin       CoordinatePayload `json:"origin"`
	Destination  CoordinatePayload `json:"destination"`
	CurrentJobID *string           `json:"current_job_id,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// ProgressPayload is the delivery progress section of an order detail.
type ProgressPayload struct {
	Location   CoordinatePayload `json:"location"`
	ETASeconds int64             `json:"eta_seconds"`
}

// OrderDetailPayload is OrderPayload plus the live progress estimate.
type OrderDetailPayload struct {
	OrderPayload
	Progress ProgressPayload `json:"progress"`
}

// AdminOrderPayload is the operator view of an order.
type AdminOrderPayload struct {
	OrderPayload
	CreatedBy string `json:"created_by"`
}

// CurrentJobPayload is the drone-facing view of its active job.
type CurrentJobPayload struct {
	ID        string            `json:"id"`
	OrderID   string            `json:"order_id"`
	Type      string            `json:"type"`
	Status    string            `json:"status"`
	Pickup    CoordinatePayload `json:"pickup"`
	Dropoff   CoordinatePayload `json:"dropoff"`
	CreatedAt time.Time         `json:"created_at"`
}

// OpenJobPayload is one entry of the open job board.
type OpenJobPayload struct {
	ID              string            `json:"id"`
	OrderID         string            `json:"order_id"`
	Type            string            `json:"type"`
	Pickup          CoordinatePayload `json:"pickup"`
	Dropoff         CoordinatePayload `json:"dropoff"`
	ExcludedDroneID *string           `json:"excluded_drone_id,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// AdminJobPayload is the operator view of a job.
type AdminJobPayload struct {
	ID              string            `json:"id"`
	OrderID         string            `json:"order_id"`
	Type            string            `json:"type"`
	Status          string            `json:"status"`
	Pickup          CoordinatePayload `json:"pickup"`
	Dropoff         CoordinatePayload `json:"dropoff"`
	AssignedDroneID *string           `json:"assigned_drone_id,omitempty"`
	ExcludedDroneID *string           `json:"excluded_drone_id,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// AdminDronePayload is the operator view of one fleet member.
type AdminDronePayload struct {
	ID              string             `json:"id"`
	Name            string             `json:"name"`
	Status          string             `json:"status"`
	LastCoordinate  *CoordinatePayload `json:"last_coordinate,omitempty"`
	LastHeartbeatAt *time.Time         `json:"last_heartbeat_at,omitempty"`
	CurrentJobID    *string            `json:"current_job_id,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

func coordinatePayload(c kernel.Coordinate) CoordinatePayload {
	return CoordinatePayload{Lat: c.Lat(), Lng: c.Lng()}
}

func optionalUUIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func orderPayload(o queries.GetCreatorOrdersQueryResponse) OrderPayload {
	return OrderPayload{
		ID:           o.ID.String(),
		Status:       o.Status,
		Origin:       coordinatePayload(o.Origin),
		Destination:  coordinatePayload(o.Destination),
		CurrentJobID: optionalUUIDString(o.CurrentJobID),
		CreatedAt:    o.CreatedAt,
	}
}

func orderDetailPayload(o queries.GetCreatorOrderQueryResponse) OrderDetailPayload {
	return OrderDetailPayload{
		OrderPayload: OrderPayload{
			ID:           o.ID.String(),
			Status:       o.Status,
			Origin:       coordinatePayload(o.Origin),
			Destination:  coordinatePayload(o.Destination),
			CurrentJobID: optionalUUIDString(o.CurrentJobID),
			CreatedAt:    o.CreatedAt,
		},
		Progress: ProgressPayload{
			Location:   coordinatePayload(o.Progress.Location),
			ETASeconds: o.Progress.ETASeconds,
		},
	}
}

func adminOrderPayload(o queries.GetAllOrdersQueryResponse) AdminOrderPayload {
	return AdminOrderPayload{
		OrderPayload: OrderPayload{
			ID:           o.ID.String(),
			Status:       o.Status,
			Origin:       coordinatePayload(o.Origin),
			Destination:  coordinatePayload(o.Destination),
			CurrentJobID: optionalUUIDString(o.CurrentJobID),
			CreatedAt:    o.CreatedAt,
		},
		CreatedBy: o.CreatedBy.String(),
	}
}

func currentJobPayload(j queries.GetCurrentJobQueryResponse) CurrentJobPayload {
	return CurrentJobPayload{
		ID:        j.ID.String(),
		OrderID:   j.OrderID.String(),
		Type:      j.Type,
		Status:    j.Status,
		Pickup:    coordinatePayload(j.Pickup),
		Dropoff:   coordinatePayload(j.Dropoff),
		CreatedAt: j.CreatedAt,
	}
}

func openJobPayload(j queries.GetOpenJobsQueryResponse) OpenJobPayload {
	return OpenJobPayload{
		ID:              j.ID.String(),
		OrderID:         j.OrderID.String(),
		Type:            j.Type,
		Pickup:          coordinatePayload(j.Pickup),
		Dropoff:         coordinatePayload(j.Dropoff),
		ExcludedDroneID: optionalUUIDString(j.ExcludedDroneID),
		CreatedAt:       j.CreatedAt,
	}
}

func adminJobPayload(j queries.GetAllJobsQueryResponse) AdminJobPayload {
	return AdminJobPayload{
		ID:              j.ID.String(),
		OrderID:         j.OrderID.String(),
		Type:            j.Type,
		Status:          j.Status,
		Pickup:          coordinatePayload(j.Pickup),
		Dropoff:         coordinatePayload(j.Dropoff),
		AssignedDroneID: optionalUUIDString(j.AssignedDroneID),
		ExcludedDroneID: optionalUUIDString(j.ExcludedDroneID),
		CreatedAt:       j.CreatedAt,
	}
}

func adminDronePayload(d queries.GetAllDronesQueryResponse) AdminDronePayload {
	payload := AdminDronePayload{
		ID:              d.ID.String(),
		Name:            d.Name,
		Status:          d.Status,
		LastHeartbeatAt: d.LastHeartbeatAt,
		CurrentJobID:    optionalUUIDString(d.CurrentJobID),
		CreatedAt:       d.CreatedAt,
	}
	if d.LastCoordinate != nil {
		coordinate := coordinatePayload(*d.LastCoordinate)
		payload.LastCoordinate = &coordinate
	}
	return payload
}
