package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrHeartbeatCommandIsNotConstructed = errors.New(
	"HeartbeatCommand must be created via NewHeartbeatCommand constructor",
)

// HeartbeatCommand represents a drone reporting its position. Heartbeats
// keep the drone out of the stale sweep and feed progress estimates.
type HeartbeatCommand struct { //nolint:recvcheck //using for validation
	droneID    kernel.UUID
	coordinate kernel.Coordinate

	guard guard.ConstructorGuard
}

// NewHeartbeatCommand creates a command recording a drone's position.
func NewHeartbeatCommand(droneID kernel.UUID,
	coordinate kernel.Coordinate) (HeartbeatCommand, error) {
	command := HeartbeatCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(droneID),
		command.setCoordinate(coordinate),
	); err != nil {
		return HeartbeatCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c HeartbeatCommand) Validate() error {
	return c.guard.Validate(ErrHeartbeatCommandIsNotConstructed)
}

// DroneID returns the reporting drone.
func (c HeartbeatCommand) DroneID() kernel.UUID {
	return c.droneID
}

// Coordinate returns the reported position.
func (c HeartbeatCommand) Coordinate() kernel.Coordinate {
	return c.coordinate
}

func (c *HeartbeatCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	c.droneID = droneID
	return nil
}

func (c *HeartbeatCommand) setCoordinate(coordinate kernel.Coordinate) error {
	if err := coordinate.Validate(); err != nil {
		return err
	}
	c.coordinate = coordinate
	return nil
}
