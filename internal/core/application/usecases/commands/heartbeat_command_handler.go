package commands

import (
	"context"
)

// HeartbeatCommandHandler records a drone's position and heartbeat time.
// Heartbeats have no state-machine effect of their own.
type HeartbeatCommandHandler struct {
	uowFactory DroneUoWFactory
}

// NewHeartbeatCommandHandler creates a handler for drone heartbeats.
func NewHeartbeatCommandHandler(uowFactory DroneUoWFactory) HeartbeatCommandHandler {
	return HeartbeatCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the heartbeat command.
func (h HeartbeatCommandHandler) Handle(ctx context.Context, cmd HeartbeatCommand) error {
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

	reportingDrone, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return err
	}

	if err = reportingDrone.Heartbeat(cmd.Coordinate()); err != nil {
		return err
	}
	if err = droneRepo.Update(ctx, reportingDrone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
