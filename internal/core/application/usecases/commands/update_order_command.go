package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrUpdateOrderCommandIsNotConstructed = errors.New(
		"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
	)
	ErrNothingToUpdate = errors.New("at least one of origin or destination is required")
)

// UpdateOrderCommand represents an admin request to move an order's pickup
// or dropoff point. Either coordinate may be omitted.
type UpdateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	origin      *kernel.Coordinate
	destination *kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a command to change an order's route.
// At least one coordinate must be provided.
func NewUpdateOrderCommand(orderID kernel.UUID,
	origin, destination *kernel.Coordinate) (UpdateOrderCommand, error) {
	command := UpdateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if origin == nil && destination == nil {
		return UpdateOrderCommand{}, ErrNothingToUpdate
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setOrigin(origin),
		command.setDestination(destination),
	); err != nil {
		return UpdateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

// OrderID returns the order to update.
func (c UpdateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Origin returns the new pickup coordinate, or nil to leave it unchanged.
func (c UpdateOrderCommand) Origin() *kernel.Coordinate {
	return c.origin
}

// Destination returns the new dropoff coordinate, or nil to leave it
// unchanged.
func (c UpdateOrderCommand) Destination() *kernel.Coordinate {
	return c.destination
}

func (c *UpdateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *UpdateOrderCommand) setOrigin(origin *kernel.Coordinate) error {
	if origin == nil {
		return nil
	}
	if err := origin.Validate(); err != nil {
		return err
	}
	c.origin = origin
	return nil
}

func (c *UpdateOrderCommand) setDestination(destination *kernel.Coordinate) error {
	if destination == nil {
		return nil
	}
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}
