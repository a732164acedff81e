package commands

import (
	"context"
	"fmt"

	"dronedelivery/internal/pkg/errs"
)

// UpdateOrderCommandHandler applies an admin route change to an order and
// mirrors it onto the current job.
//
// Terminal orders and picked-up jobs reject the change. An origin change is
// additionally refused once a handoff replaced the pickup point with the
// broken drone's location.
type UpdateOrderCommandHandler struct {
	uowFactory OrderJobUoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for admin order updates.
func NewUpdateOrderCommandHandler(uowFactory OrderJobUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. The order and its current job change
// together or not at all.
func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
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

	updatedOrder, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	jobID := updatedOrder.CurrentJobID()
	if jobID == nil {
		return errs.NewInvalidStateError(fmt.Sprintf(
			"order %s has no active job to update", cmd.OrderID()))
	}

	currentJob, err := jobRepo.Get(ctx, *jobID)
	if err != nil {
		return err
	}

	if origin := cmd.Origin(); origin != nil {
		if err = updatedOrder.UpdateOrigin(*origin); err != nil {
			return err
		}
		if err = currentJob.UpdatePickup(*origin); err != nil {
			return err
		}
	}

	if destination := cmd.Destination(); destination != nil {
		if err = updatedOrder.UpdateDestination(*destination); err != nil {
			return err
		}
		if err = currentJob.UpdateDropoff(*destination); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, updatedOrder); err != nil {
		return err
	}
	if err = jobRepo.Update(ctx, currentJob); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
