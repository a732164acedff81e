package queries

import (
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetCreatorOrderQueryIsNotConstructed = errors.New(
	"GetCreatorOrderQuery must be created via NewGetCreatorOrderQuery constructor",
)

// GetCreatorOrderQuery retrieves one order for its creator, together with a
// progress estimate. Users other than the creator are rejected with
// Forbidden.
type GetCreatorOrderQuery struct {
	creatorID kernel.UUID
	orderID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCreatorOrderQuery creates a query for the given creator and order.
func NewGetCreatorOrderQuery(creatorID, orderID kernel.UUID) (GetCreatorOrderQuery, error) {
	err := errors.Join(
		creatorID.Validate(),
		orderID.Validate(),
	)
	if err != nil {
		return GetCreatorOrderQuery{}, err
	}
	return GetCreatorOrderQuery{
		creatorID: creatorID,
		orderID:   orderID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// CreatorID returns the requesting user.
func (q GetCreatorOrderQuery) CreatorID() kernel.UUID {
	return q.creatorID
}

// OrderID returns the requested order.
func (q GetCreatorOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// Validate ensures the query was created through the constructor.
func (q GetCreatorOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetCreatorOrderQueryIsNotConstructed)
}

// GetCreatorOrderQueryResponse is the read model for one order with its
// progress estimate.
type GetCreatorOrderQueryResponse struct {
	ID           kernel.UUID
	Status       string
	Origin       kernel.Coordinate
	Destination  kernel.Coordinate
	CurrentJobID *kernel.UUID
	Progress     services.Progress
	CreatedAt    time.Time
}
