package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/enduser"
)

// CreateEndUserCommandHandler registers a new end user.
type CreateEndUserCommandHandler struct {
	uowFactory EndUserUoWFactory
}

// NewCreateEndUserCommandHandler creates a handler for user registration.
func NewCreateEndUserCommandHandler(uowFactory EndUserUoWFactory) CreateEndUserCommandHandler {
	return CreateEndUserCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h CreateEndUserCommandHandler) Handle(ctx context.Context, cmd CreateEndUserCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newUser, err := enduser.NewEndUser(cmd.UserID(), cmd.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.EndUserRepository().Add(ctx, newUser); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
