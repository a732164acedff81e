package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrMarkDroneBrokenCommandIsNotConstructed = errors.New(
	"MarkDroneBrokenCommand must be created via NewMarkDroneBrokenCommand constructor",
)

// MarkDroneBrokenCommand represents a drone breaking down, either
// self-reported or detected by the heartbeat sweep.
type MarkDroneBrokenCommand struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDroneBrokenCommand creates a command taking a drone out of
// service.
func NewMarkDroneBrokenCommand(droneID kernel.UUID) (MarkDroneBrokenCommand, error) {
	command := MarkDroneBrokenCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDroneID(droneID); err != nil {
		return MarkDroneBrokenCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDroneBrokenCommand) Validate() error {
	return c.guard.Validate(ErrMarkDroneBrokenCommandIsNotConstructed)
}

// DroneID returns the broken drone.
func (c MarkDroneBrokenCommand) DroneID() kernel.UUID {
	return c.droneID
}

func (c *MarkDroneBrokenCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	c.droneID = droneID
	return nil
}
