package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrSetDroneStatusCommandIsNotConstructed = errors.New(
	"SetDroneStatusCommand must be created via NewSetDroneStatusCommand constructor",
)

// SetDroneStatusCommand represents an admin override of a drone's status.
type SetDroneStatusCommand struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID
	status  drone.Status

	guard guard.ConstructorGuard
}

// NewSetDroneStatusCommand creates a command forcing a drone status.
func NewSetDroneStatusCommand(droneID kernel.UUID,
	status drone.Status) (SetDroneStatusCommand, error) {
	command := SetDroneStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(droneID),
		command.setStatus(status),
	); err != nil {
		return SetDroneStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDroneStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetDroneStatusCommandIsNotConstructed)
}

// DroneID returns the targeted drone.
func (c SetDroneStatusCommand) DroneID() kernel.UUID {
	return c.droneID
}

// Status returns the status to apply.
func (c SetDroneStatusCommand) Status() drone.Status {
	return c.status
}

func (c *SetDroneStatusCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	c.droneID = droneID
	return nil
}

func (c *SetDroneStatusCommand) setStatus(status drone.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
