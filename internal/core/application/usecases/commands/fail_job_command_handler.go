package commands

import (
	"context"
)

// FailJobCommandHandler fails a delivery: the job and its parent order end
// Failed and the drone is released. No handoff is created, in contrast to a
// breakdown, because the drone itself is still serviceable.
type FailJobCommandHandler struct {
	uowFactory UoWFactory
}

// NewFailJobCommandHandler creates a handler for self-reported job failure.
func NewFailJobCommandHandler(uowFactory UoWFactory) FailJobCommandHandler {
	return FailJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the failure command. Only the assigned drone may fail
// the job, and only from the InProgress status.
func (h FailJobCommandHandler) Handle(ctx context.Context, cmd FailJobCommand) error {
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

	failedJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}
	if err = failedJob.Fail(cmd.DroneID()); err != nil {
		return err
	}

	parentOrder, err := orderRepo.Get(ctx, failedJob.OrderID())
	if err != nil {
		return err
	}
	if err = parentOrder.Fail(); err != nil {
		return err
	}

	reportingDrone, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return err
	}
	if err = reportingDrone.ClearCurrentJob(); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, failedJob); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, parentOrder); err != nil {
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
