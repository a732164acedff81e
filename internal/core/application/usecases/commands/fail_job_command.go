package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrFailJobCommandIsNotConstructed = errors.New(
	"FailJobCommand must be created via NewFailJobCommand constructor",
)

// FailJobCommand represents the assigned drone giving up on an in-progress
// job without a breakdown.
type FailJobCommand struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID
	jobID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewFailJobCommand creates a command failing an in-progress job.
func NewFailJobCommand(droneID, jobID kernel.UUID) (FailJobCommand, error) {
	command := FailJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(droneID),
		command.setJobID(jobID),
	); err != nil {
		return FailJobCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c FailJobCommand) Validate() error {
	return c.guard.Validate(ErrFailJobCommandIsNotConstructed)
}

// DroneID returns the reporting drone.
func (c FailJobCommand) DroneID() kernel.UUID {
	return c.droneID
}

// JobID returns the job being failed.
func (c FailJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *FailJobCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	c.droneID = droneID
	return nil
}

func (c *FailJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}
