package commands

import (
	"errors"

	"dronedelivery/internal/pkg/guard"
)

var ErrAssignJobsCommandIsNotConstructed = errors.New(
	"AssignJobsCommand must be created via NewAssignJobsCommand constructor",
)

// AssignJobsCommand triggers one assignment pass: open jobs are pushed
// toward idle drones without waiting for the drones to poll.
type AssignJobsCommand struct {
	guard guard.ConstructorGuard
}

// NewAssignJobsCommand creates a command to trigger an assignment pass.
func NewAssignJobsCommand() AssignJobsCommand {
	return AssignJobsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *AssignJobsCommand) Validate() error {
	return c.guard.Validate(ErrAssignJobsCommandIsNotConstructed)
}
