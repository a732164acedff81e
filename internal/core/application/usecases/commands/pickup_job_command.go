package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrPickupJobCommandIsNotConstructed = errors.New(
	"PickupJobCommand must be created via NewPickupJobCommand constructor",
)

// PickupJobCommand represents the assigned drone collecting the cargo of a
// reserved job.
type PickupJobCommand struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID
	jobID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickupJobCommand creates a command marking a job's cargo as collected.
func NewPickupJobCommand(droneID, jobID kernel.UUID) (PickupJobCommand, error) {
	command := PickupJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(droneID),
		command.setJobID(jobID),
	); err != nil {
		return PickupJobCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c PickupJobCommand) Validate() error {
	return c.guard.Validate(ErrPickupJobCommandIsNotConstructed)
}

// DroneID returns the collecting drone.
func (c PickupJobCommand) DroneID() kernel.UUID {
	return c.droneID
}

// JobID returns the job being picked up.
func (c PickupJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *PickupJobCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	c.droneID = droneID
	return nil
}

func (c *PickupJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}
