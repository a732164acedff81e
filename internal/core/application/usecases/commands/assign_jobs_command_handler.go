package commands

import (
	"context"
	"errors"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/job"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/pkg/errs"
)

// AssignJobsCommandHandler runs one assignment pass.
//
// The pass reads its candidates once and then acts, holding no cross-entity
// lock: every pairing is committed through the reservation protocol in its
// own transaction, and correctness against concurrent direct reservations
// rests entirely on the per-job version guard. A pairing that loses such a
// race leaves the job Open for the next tick.
//
// Jobs are processed oldest first so no job is starved by newer ones, and a
// drone assigned during the pass leaves the candidate pool, so one pass
// never gives the same drone two jobs.
type AssignJobsCommandHandler struct {
	uowFactory     UoWFactory
	reserveHandler ReserveJobCommandHandler
	dispatcher     services.JobDispatcher
}

// NewAssignJobsCommandHandler creates a handler for assignment passes.
func NewAssignJobsCommandHandler(uowFactory UoWFactory,
	reserveHandler ReserveJobCommandHandler) AssignJobsCommandHandler {
	return AssignJobsCommandHandler{
		uowFactory:     uowFactory,
		reserveHandler: reserveHandler,
		dispatcher:     services.NewJobDispatcher(),
	}
}

// Handle processes one assignment pass. A reservation lost to a concurrent
// claim is skipped without retry; any other failure aborts the rest of the
// pass, with already committed pairings left in place.
func (h AssignJobsCommandHandler) Handle(ctx context.Context, cmd AssignJobsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	openJobs, pool, err := h.loadCandidates(ctx)
	if err != nil {
		return err
	}

	for _, openJob := range openJobs {
		selected, selectErr := h.dispatcher.SelectDrone(openJob, pool)
		if errors.Is(selectErr, services.ErrDroneNotFound) {
			continue
		}
		if selectErr != nil {
			return selectErr
		}

		reserveCmd, cmdErr := NewReserveJobCommand(selected.ID(), openJob.ID())
		if cmdErr != nil {
			return cmdErr
		}

		reserveErr := h.reserveHandler.Handle(ctx, reserveCmd)
		if errors.Is(reserveErr, errs.ErrConflict) {
			// Lost the race to a direct reservation; the next tick retries.
			continue
		}
		if reserveErr != nil {
			return reserveErr
		}

		pool = removeDrone(pool, selected)
	}

	return nil
}

// loadCandidates reads the open jobs and serviceable drones in one
// read-only transaction.
func (h AssignJobsCommandHandler) loadCandidates(ctx context.Context) ([]*job.Job, []*drone.Drone, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	openJobs, err := uow.JobRepository().GetAllOpenOrderByCreatedAt(ctx)
	if err != nil {
		return nil, nil, err
	}

	drones, err := uow.DroneRepository().GetAllServiceable(ctx)
	if err != nil {
		return nil, nil, err
	}

	pool := make([]*drone.Drone, 0, len(drones))
	for _, candidate := range drones {
		if candidate.IsAvailable() {
			pool = append(pool, candidate)
		}
	}

	return openJobs, pool, nil
}

func removeDrone(pool []*drone.Drone, assigned *drone.Drone) []*drone.Drone {
	remaining := make([]*drone.Drone, 0, len(pool))
	for _, candidate := range pool {
		if !candidate.ID().IsEqual(assigned.ID()) {
			remaining = append(remaining, candidate)
		}
	}
	return remaining
}
