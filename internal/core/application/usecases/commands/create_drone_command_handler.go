package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
)

// CreateDroneCommandHandler registers a new drone.
type CreateDroneCommandHandler struct {
	uowFactory DroneUoWFactory
}

// NewCreateDroneCommandHandler creates a handler for drone registration.
func NewCreateDroneCommandHandler(uowFactory DroneUoWFactory) CreateDroneCommandHandler {
	return CreateDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h CreateDroneCommandHandler) Handle(ctx context.Context, cmd CreateDroneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newDrone, err := drone.NewDrone(cmd.DroneID(), cmd.Name())
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

	if err = uow.DroneRepository().Add(ctx, newDrone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
