package commands

import (
	"context"
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/drone"
)

// SweepHeartbeatsCommandHandler converts silent drones into Broken so any
// cargo they carry gets handed off. A drone that stops responding goes
// through exactly the same breakdown path as one that reports itself
// broken, including the handoff protocol.
type SweepHeartbeatsCommandHandler struct {
	uowFactory    UoWFactory
	brokenHandler MarkDroneBrokenCommandHandler
}

// NewSweepHeartbeatsCommandHandler creates a handler for heartbeat sweeps.
func NewSweepHeartbeatsCommandHandler(uowFactory UoWFactory,
	brokenHandler MarkDroneBrokenCommandHandler) SweepHeartbeatsCommandHandler {
	return SweepHeartbeatsCommandHandler{
		uowFactory:    uowFactory,
		brokenHandler: brokenHandler,
	}
}

// Handle processes one sweep. Each stale drone is broken in its own
// transaction; one drone's failure does not stop the sweep, and the
// failures are reported joined.
func (h SweepHeartbeatsCommandHandler) Handle(ctx context.Context, cmd SweepHeartbeatsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	drones, err := h.loadServiceable(ctx)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	var sweepErrs []error
	for _, candidate := range drones {
		if !candidate.IsHeartbeatStaleAt(now, cmd.Timeout()) {
			continue
		}

		brokenCmd, cmdErr := NewMarkDroneBrokenCommand(candidate.ID())
		if cmdErr != nil {
			sweepErrs = append(sweepErrs, cmdErr)
			continue
		}
		if handleErr := h.brokenHandler.Handle(ctx, brokenCmd); handleErr != nil {
			sweepErrs = append(sweepErrs, handleErr)
		}
	}

	return errors.Join(sweepErrs...)
}

func (h SweepHeartbeatsCommandHandler) loadServiceable(ctx context.Context) ([]*drone.Drone, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return uow.DroneRepository().GetAllServiceable(ctx)
}
