package commands

import (
	"context"
)

// MarkDroneFixedCommandHandler returns a repaired drone to service.
type MarkDroneFixedCommandHandler struct {
	uowFactory DroneUoWFactory
}

// NewMarkDroneFixedCommandHandler creates a handler for drone repairs.
func NewMarkDroneFixedCommandHandler(uowFactory DroneUoWFactory) MarkDroneFixedCommandHandler {
	return MarkDroneFixedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the repair command.
func (h MarkDroneFixedCommandHandler) Handle(ctx context.Context, cmd MarkDroneFixedCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()

	fixedDrone, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return err
	}

	if err = fixedDrone.MarkFixed(); err != nil {
		return err
	}
	if err = droneRepo.Update(ctx, fixedDrone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
