package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
)

// SetDroneStatusCommandHandler applies an admin status override. Forcing
// Broken routes through the full breakdown handler so any carried cargo is
// handed off; other statuses are a direct set.
type SetDroneStatusCommandHandler struct {
	uowFactory    DroneUoWFactory
	brokenHandler MarkDroneBrokenCommandHandler
}

// NewSetDroneStatusCommandHandler creates a handler for admin status
// overrides.
func NewSetDroneStatusCommandHandler(uowFactory DroneUoWFactory,
	brokenHandler MarkDroneBrokenCommandHandler) SetDroneStatusCommandHandler {
	return SetDroneStatusCommandHandler{
		uowFactory:    uowFactory,
		brokenHandler: brokenHandler,
	}
}

// Handle processes the status override command.
func (h SetDroneStatusCommandHandler) Handle(ctx context.Context, cmd SetDroneStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if cmd.Status() == drone.Broken {
		brokenCmd, err := NewMarkDroneBrokenCommand(cmd.DroneID())
		if err != nil {
			return err
		}
		return h.brokenHandler.Handle(ctx, brokenCmd)
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()

	targetDrone, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return err
	}

	if err = targetDrone.SetStatus(cmd.Status()); err != nil {
		return err
	}
	if err = droneRepo.Update(ctx, targetDrone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
