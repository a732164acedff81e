package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrReserveJobCommandIsNotConstructed = errors.New(
	"ReserveJobCommand must be created via NewReserveJobCommand constructor",
)

// ReserveJobCommand represents a drone's claim on an open job. Many drones
// may race for the same job; the version guard lets exactly one win.
type ReserveJobCommand struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID
	jobID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewReserveJobCommand creates a command claiming a job for a drone.
func NewReserveJobCommand(droneID, jobID kernel.UUID) (ReserveJobCommand, error) {
	command := ReserveJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(droneID),
		command.setJobID(jobID),
	); err != nil {
		return ReserveJobCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ReserveJobCommand) Validate() error {
	return c.guard.Validate(ErrReserveJobCommandIsNotConstructed)
}

// DroneID returns the claiming drone.
func (c ReserveJobCommand) DroneID() kernel.UUID {
	return c.droneID
}

// JobID returns the job being claimed.
func (c ReserveJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *ReserveJobCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	c.droneID = droneID
	return nil
}

func (c *ReserveJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}
