package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrWithdrawOrderCommandIsNotConstructed = errors.New(
	"WithdrawOrderCommand must be created via NewWithdrawOrderCommand constructor",
)

// WithdrawOrderCommand represents a creator's request to cancel an order
// before its cargo is picked up.
type WithdrawOrderCommand struct { //nolint:recvcheck //using for validation
	actorID kernel.UUID
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewWithdrawOrderCommand creates a command to withdraw an order on behalf
// of an actor.
func NewWithdrawOrderCommand(actorID, orderID kernel.UUID) (WithdrawOrderCommand, error) {
	command := WithdrawOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setActorID(actorID),
		command.setOrderID(orderID),
	); err != nil {
		return WithdrawOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c WithdrawOrderCommand) Validate() error {
	return c.guard.Validate(ErrWithdrawOrderCommandIsNotConstructed)
}

// ActorID returns the identity requesting the withdrawal.
func (c WithdrawOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// OrderID returns the order to withdraw.
func (c WithdrawOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *WithdrawOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	c.actorID = actorID
	return nil
}

func (c *WithdrawOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
