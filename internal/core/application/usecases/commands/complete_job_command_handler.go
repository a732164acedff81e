package commands

import (
	"context"
)

// CompleteJobCommandHandler finishes a delivery: the job completes, the
// parent order is delivered, and the drone is released.
type CompleteJobCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteJobCommandHandler creates a handler for job completion.
func NewCompleteJobCommandHandler(uowFactory UoWFactory) CompleteJobCommandHandler {
	return CompleteJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command. Only the assigned drone may
// complete, and only from the InProgress status.
func (h CompleteJobCommandHandler) Handle(ctx context.Context, cmd CompleteJobCommand) error {
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

	completedJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}
	if err = completedJob.Complete(cmd.DroneID()); err != nil {
		return err
	}

	parentOrder, err := orderRepo.Get(ctx, completedJob.OrderID())
	if err != nil {
		return err
	}
	if err = parentOrder.Deliver(); err != nil {
		return err
	}

	deliveringDrone, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return err
	}
	if err = deliveringDrone.ClearCurrentJob(); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, completedJob); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, parentOrder); err != nil {
		return err
	}
	if err = droneRepo.Update(ctx, deliveringDrone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
