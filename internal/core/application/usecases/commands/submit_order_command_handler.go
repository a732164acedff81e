package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/job"
	"dronedelivery/internal/core/domain/model/order"
)

// SubmitOrderCommandHandler handles the business logic for order submission.
// Creates the order in Submitted status together with one Open job of type
// PickupAndDeliver and links them, so every non-terminal order always has a
// current job.
type SubmitOrderCommandHandler struct {
	uowFactory OrderJobUoWFactory
}

// NewSubmitOrderCommandHandler creates a handler for order submission.
func NewSubmitOrderCommandHandler(uowFactory OrderJobUoWFactory) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order submission command. Persists the order and its
// initial job in one transaction.
func (h SubmitOrderCommandHandler) Handle(ctx context.Context, cmd SubmitOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CreatorID(), cmd.Origin(), cmd.Destination())
	if err != nil {
		return err
	}

	newJob, err := job.NewJob(newOrder.ID(), cmd.Origin(), cmd.Destination())
	if err != nil {
		return err
	}

	if err = newOrder.AssignCurrentJob(newJob.ID()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.JobRepository().Add(ctx, newJob); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
