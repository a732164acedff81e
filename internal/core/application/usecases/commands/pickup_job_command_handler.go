package commands

import (
	"context"
)

// PickupJobCommandHandler moves a reserved job into progress: the job
// starts, the parent order enters delivery, and the drone's current job
// pointer is confirmed.
type PickupJobCommandHandler struct {
	uowFactory UoWFactory
}

// NewPickupJobCommandHandler creates a handler for job pickups.
func NewPickupJobCommandHandler(uowFactory UoWFactory) PickupJobCommandHandler {
	return PickupJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command. Only the assigned drone may pick up,
// and only from the Reserved status.
func (h PickupJobCommandHandler) Handle(ctx context.Context, cmd PickupJobCommand) error {
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

	jobRepo := uow.JobRepository()
	orderRepo := uow.OrderRepository()
	droneRepo := uow.DroneRepository()

	pickedJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}
	if err = pickedJob.Pickup(cmd.DroneID()); err != nil {
		return err
	}

	parentOrder, err := orderRepo.Get(ctx, pickedJob.OrderID())
	if err != nil {
		return err
	}
	if err = parentOrder.StartDelivery(); err != nil {
		return err
	}

	carryingDrone, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return err
	}
	if err = carryingDrone.AssignJob(pickedJob.ID()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, pickedJob); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, parentOrder); err != nil {
		return err
	}
	if err = droneRepo.Update(ctx, carryingDrone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
