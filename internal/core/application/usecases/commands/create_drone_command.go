package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrCreateDroneCommandIsNotConstructed = errors.New(
		"CreateDroneCommand must be created via NewCreateDroneCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateDroneCommand represents the lazy registration of a drone on its
// first identity lookup.
type CreateDroneCommand struct { //nolint:recvcheck //using for validation
	droneID kernel.UUID
	name    string

	guard guard.ConstructorGuard
}

// NewCreateDroneCommand creates a command registering a drone under a
// unique name.
func NewCreateDroneCommand(droneID kernel.UUID, name string) (CreateDroneCommand, error) {
	command := CreateDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDroneID(droneID),
		command.setName(name),
	); err != nil {
		return CreateDroneCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDroneCommand) Validate() error {
	return c.guard.Validate(ErrCreateDroneCommandIsNotConstructed)
}

// DroneID returns the identifier for the new drone.
func (c CreateDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

// Name returns the drone's unique name.
func (c CreateDroneCommand) Name() string {
	return c.name
}

func (c *CreateDroneCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	c.droneID = droneID
	return nil
}

func (c *CreateDroneCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
