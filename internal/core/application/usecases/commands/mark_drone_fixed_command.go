package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrMarkDroneFixedCommandIsNotConstructed = errors.New(
	"MarkDroneFixedCommand must be created via NewMarkDroneFixedCommand constructor",
)

// MarkDroneFixedCommand represents a repaired drone returning to service.
// Repairs never touch job exclusions: a drone excluded from a handoff job
// stays excluded from it forever.
type MarkDroneFixedCommand struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkDroneFixedCommand creates a command returning a drone to service.
func NewMarkDroneFixedCommand(droneID kernel.UUID) (MarkDroneFixedCommand, error) {
	command := MarkDroneFixedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setDroneID(droneID); err != nil {
		return MarkDroneFixedCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkDroneFixedCommand) Validate() error {
	return c.guard.Validate(ErrMarkDroneFixedCommandIsNotConstructed)
}

// DroneID returns the repaired drone.
func (c MarkDroneFixedCommand) DroneID() kernel.UUID {
	return c.droneID
}

func (c *MarkDroneFixedCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	c.droneID = droneID
	return nil
}
