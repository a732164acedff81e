package queries

import (
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrGetCreatorOrdersQueryIsNotConstructed = errors.New(
	"GetCreatorOrdersQuery must be created via NewGetCreatorOrdersQuery constructor",
)

// GetCreatorOrdersQuery retrieves the orders submitted by one user, newest
// first.
type GetCreatorOrdersQuery struct {
	creatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCreatorOrdersQuery creates a query for the given creator.
func NewGetCreatorOrdersQuery(creatorID kernel.UUID) (GetCreatorOrdersQuery, error) {
	if err := creatorID.Validate(); err != nil {
		return GetCreatorOrdersQuery{}, err
	}
	return GetCreatorOrdersQuery{
		creatorID: creatorID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// CreatorID returns the user whose orders are requested.
func (q GetCreatorOrdersQuery) CreatorID() kernel.UUID {
	return q.creatorID
}

// Validate ensures the query was created through the constructor.
func (q GetCreatorOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCreatorOrdersQueryIsNotConstructed)
}

// GetCreatorOrdersQueryResponse is the read model for one order in the
// creator's list.
type GetCreatorOrdersQueryResponse struct {
	ID           kernel.UUID
	Status       string
	Origin       kernel.Coordinate
	Destination  kernel.Coordinate
	CurrentJobID *kernel.UUID
	CreatedAt    time.Time
}
