package commands

import (
	"context"
	"fmt"

	"dronedelivery/internal/core/domain/model/job"
	"dronedelivery/internal/pkg/errs"
)

// MarkDroneBrokenCommandHandler takes a drone out of service and runs the
// cargo handoff protocol.
//
// Breaking always succeeds for the drone itself. What happens to its
// current job depends on how far the delivery got:
//
//   - no current job: nothing else to do.
//   - job merely Reserved: the drone never had the cargo, so the drone is
//     released and the job is left for the withdrawal or reservation flows
//     to settle.
//   - job InProgress: the job fails, a replacement job of type
//     HandoffPickupAndDeliver opens at the drone's last known coordinate
//     with the broken drone permanently excluded, and the parent order
//     switches onto it.
//
// This is the only path that creates handoff jobs and the only path that
// populates the exclusion, which is what makes the exclusion permanent
// across later Broken/Fixed cycles.
type MarkDroneBrokenCommandHandler struct {
	uowFactory UoWFactory
}

// NewMarkDroneBrokenCommandHandler creates a handler for drone breakdowns.
func NewMarkDroneBrokenCommandHandler(uowFactory UoWFactory) MarkDroneBrokenCommandHandler {
	return MarkDroneBrokenCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the breakdown command. A drone carrying cargo without a
// known last coordinate is an invalid state: there is nowhere to open the
// handoff pickup.
func (h MarkDroneBrokenCommandHandler) Handle(ctx context.Context, cmd MarkDroneBrokenCommand) error {
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

	brokenDrone, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return err
	}
	if err = brokenDrone.MarkBroken(); err != nil {
		return err
	}

	currentJobID := brokenDrone.CurrentJobID()
	if currentJobID == nil {
		if err = droneRepo.Update(ctx, brokenDrone); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}
		return nil
	}

	jobRepo := uow.JobRepository()

	currentJob, err := jobRepo.Get(ctx, *currentJobID)
	if err != nil {
		return err
	}

	if currentJob.Status() != job.InProgress {
		// The drone never had possession of the cargo.
		if err = brokenDrone.ClearCurrentJob(); err != nil {
			return err
		}
		if err = droneRepo.Update(ctx, brokenDrone); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}
		return nil
	}

	lastCoordinate := brokenDrone.LastCoordinate()
	if lastCoordinate == nil {
		return errs.NewInvalidStateError(fmt.Sprintf(
			"drone %s broke while carrying cargo but has no known location", cmd.DroneID()))
	}

	if err = currentJob.Fail(brokenDrone.ID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()

	parentOrder, err := orderRepo.Get(ctx, currentJob.OrderID())
	if err != nil {
		return err
	}

	handoffJob, err := job.NewHandoffJob(parentOrder.ID(),
		*lastCoordinate, parentOrder.Destination(), brokenDrone.ID())
	if err != nil {
		return err
	}

	if err = parentOrder.RequestHandoff(handoffJob.ID()); err != nil {
		return err
	}
	if err = brokenDrone.ClearCurrentJob(); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, currentJob); err != nil {
		return err
	}
	if err = jobRepo.Add(ctx, handoffJob); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, parentOrder); err != nil {
		return err
	}
	if err = droneRepo.Update(ctx, brokenDrone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
