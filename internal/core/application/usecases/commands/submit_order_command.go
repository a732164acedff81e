package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to create a new delivery order
// together with its initial job.
//
// Example:
//
//	cmd, err := NewSubmitOrderCommand(kernel.NewUUID(), creatorID, origin, destination)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to submit order: %w", err)
//	}
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	creatorID   kernel.UUID
	origin      kernel.Coordinate
	destination kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit a new delivery order.
// Validates identifiers and both coordinates.
func NewSubmitOrderCommand(orderID, creatorID kernel.UUID,
	origin, destination kernel.Coordinate) (SubmitOrderCommand, error) {
	command := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCreatorID(creatorID),
		command.setOrigin(origin),
		command.setDestination(destination),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the identifier for the new order.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CreatorID returns the identity of the submitting user.
func (c SubmitOrderCommand) CreatorID() kernel.UUID {
	return c.creatorID
}

// Origin returns the pickup coordinate.
func (c SubmitOrderCommand) Origin() kernel.Coordinate {
	return c.origin
}

// Destination returns the dropoff coordinate.
func (c SubmitOrderCommand) Destination() kernel.Coordinate {
	return c.destination
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setCreatorID(creatorID kernel.UUID) error {
	if err := creatorID.Validate(); err != nil {
		return err
	}
	c.creatorID = creatorID
	return nil
}

func (c *SubmitOrderCommand) setOrigin(origin kernel.Coordinate) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	c.origin = origin
	return nil
}

func (c *SubmitOrderCommand) setDestination(destination kernel.Coordinate) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}
