package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var ErrCreateEndUserCommandIsNotConstructed = errors.New(
	"CreateEndUserCommand must be created via NewCreateEndUserCommand constructor",
)

// CreateEndUserCommand represents the lazy registration of an end user on
// their first identity lookup.
type CreateEndUserCommand struct { //nolint:recvcheck //using for validation
	userID kernel.UUID
	name   string

	guard guard.ConstructorGuard
}

// NewCreateEndUserCommand creates a command registering a user under a
// unique name.
func NewCreateEndUserCommand(userID kernel.UUID, name string) (CreateEndUserCommand, error) {
	command := CreateEndUserCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setUserID(userID),
		command.setName(name),
	); err != nil {
		return CreateEndUserCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateEndUserCommand) Validate() error {
	return c.guard.Validate(ErrCreateEndUserCommandIsNotConstructed)
}

// UserID returns the identifier for the new user.
func (c CreateEndUserCommand) UserID() kernel.UUID {
	return c.userID
}

// Name returns the user's unique name.
func (c CreateEndUserCommand) Name() string {
	return c.name
}

func (c *CreateEndUserCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *CreateEndUserCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}
