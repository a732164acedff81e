package commands

import (
	"context"
	"fmt"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/pkg/errs"
)

// ReserveJobCommandHandler implements the reservation protocol: the single
// chokepoint through which both drone-initiated claims and the assignment
// pass commit a drone/job pairing.
//
// The job and drone writes go through their version guards, so when two
// callers race for the same job exactly one commit succeeds and the rest
// observe a Conflict with no partial change.
type ReserveJobCommandHandler struct {
	uowFactory UoWFactory
}

// NewReserveJobCommandHandler creates a handler for job reservations.
func NewReserveJobCommandHandler(uowFactory UoWFactory) ReserveJobCommandHandler {
	return ReserveJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reservation command. Broken drones cannot reserve,
// excluded drones are forbidden, and a job that already left Open is a
// conflict. A drone already holding another job cannot take a second one.
func (h ReserveJobCommandHandler) Handle(ctx context.Context, cmd ReserveJobCommand) error {
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
	droneRepo := uow.DroneRepository()

	reservingDrone, err := droneRepo.Get(ctx, cmd.DroneID())
	if err != nil {
		return err
	}
	if reservingDrone.Status() == drone.Broken {
		return errs.NewInvalidStateError(fmt.Sprintf(
			"broken drone %s cannot reserve jobs", cmd.DroneID()))
	}

	reservedJob, err := jobRepo.Get(ctx, cmd.JobID())
	if err != nil {
		return err
	}

	if err = reservedJob.Reserve(reservingDrone.ID()); err != nil {
		return err
	}
	if err = reservingDrone.AssignJob(reservedJob.ID()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, reservedJob); err != nil {
		return err
	}
	if err = droneRepo.Update(ctx, reservingDrone); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
