package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrCompleteJobCommandIsNotConstructed = errors.New(
	"CompleteJobCommand must be created via NewCompleteJobCommand constructor",
)

// CompleteJobCommand represents the assigned drone reporting a delivered
// cargo.
type CompleteJobCommand struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID
	jobID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompleteJobCommand creates a command finishing an in-progress job.
func NewCompleteJobCommand(droneID, jobID kernel.UUID) (CompleteJobCommand, error) {
	command := CompleteJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(droneID),
		command.setJobID(jobID),
	); err != nil {
		return CompleteJobCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteJobCommand) Validate() error {
	return c.guard.Validate(ErrCompleteJobCommandIsNotConstructed)
}

// DroneID returns the reporting drone.
func (c CompleteJobCommand) DroneID() kernel.UUID {
	return c.droneID
}

// JobID returns the job being completed.
func (c CompleteJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c *CompleteJobCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	c.droneID = droneID
	return nil
}

func (c *CompleteJobCommand) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return err
	}
	c.jobID = jobID
	return nil
}
