package commands

import (
	"context"
	"fmt"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
)

// WithdrawOrderCommandHandler cancels an order and its current job.
//
// Only the creator may withdraw, and only before pickup: a job that is
// already InProgress blocks the withdrawal. A merely Reserved job is
// canceled under the reserving drone's feet and the drone is released.
type WithdrawOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewWithdrawOrderCommandHandler creates a handler for order withdrawal.
func NewWithdrawOrderCommandHandler(uowFactory UoWFactory) WithdrawOrderCommandHandler {
	return WithdrawOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the withdrawal command. Cancels the order and its
// current job atomically and releases the reserving drone, if any.
func (h WithdrawOrderCommandHandler) Handle(ctx context.Context, cmd WithdrawOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	jobRepo := uow.JobRepository()

	withdrawnOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !withdrawnOrder.IsCreatedBy(cmd.ActorID()) {
		return errs.NewForbiddenError(fmt.Sprintf(
			"order %s does not belong to user %s", cmd.OrderID(), cmd.ActorID()))
	}

	var reservingDroneID *kernel.UUID
	if jobID := withdrawnOrder.CurrentJobID(); jobID != nil {
		currentJob, jobErr := jobRepo.Get(ctx, *jobID)
		if jobErr != nil {
			return jobErr
		}

		reservingDroneID = currentJob.AssignedDroneID()
		if jobErr = currentJob.Cancel(); jobErr != nil {
			return jobErr
		}
		if jobErr = jobRepo.Update(ctx, currentJob); jobErr != nil {
			return jobErr
		}
	}

	if err = withdrawnOrder.Cancel(); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, withdrawnOrder); err != nil {
		return err
	}

	if reservingDroneID != nil {
		droneRepo := uow.DroneRepository()
		reservingDrone, droneErr := droneRepo.Get(ctx, *reservingDroneID)
		if droneErr != nil {
			return droneErr
		}
		if droneErr = reservingDrone.ClearCurrentJob(); droneErr != nil {
			return droneErr
		}
		if droneErr = droneRepo.Update(ctx, reservingDrone); droneErr != nil {
			return droneErr
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
