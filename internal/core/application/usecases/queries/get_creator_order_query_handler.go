package queries

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/job"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"
)

// GetCreatorOrderQueryHandler reads one order with a progress estimate.
//
// Unlike the pure-SQL read handlers, this one loads the aggregates through
// the repositories: the progress estimate is a domain computation over the
// order, its current job, and the assigned drone, so the handler
// reconstructs exactly those three.
type GetCreatorOrderQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	estimator  services.ProgressEstimator
}

// NewGetCreatorOrderQueryHandler creates a handler over the given unit of
// work factory.
func NewGetCreatorOrderQueryHandler(uowFactory ports.UnitOfWorkFactory) GetCreatorOrderQueryHandler {
	return GetCreatorOrderQueryHandler{
		uowFactory: uowFactory,
		estimator:  services.NewProgressEstimator(),
	}
}

// Handle returns the order read model for its creator. A requester that did
// not create the order gets a Forbidden error indistinguishable from any
// other authorization failure.
func (h GetCreatorOrderQueryHandler) Handle(
	ctx context.Context,
	query GetCreatorOrderQuery,
) (GetCreatorOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCreatorOrderQueryResponse{}, err
	}

	requestedOrder, currentJob, assignedDrone, err := h.load(ctx, query)
	if err != nil {
		return GetCreatorOrderQueryResponse{}, err
	}

	progress := services.Progress{Location: requestedOrder.Origin(), ETASeconds: 0}
	if currentJob != nil {
		progress, err = h.estimator.Estimate(requestedOrder, currentJob, assignedDrone)
		if err != nil {
			return GetCreatorOrderQueryResponse{}, err
		}
	}

	return GetCreatorOrderQueryResponse{
		ID:           requestedOrder.ID(),
		Status:       requestedOrder.Status().String(),
		Origin:       requestedOrder.Origin(),
		Destination:  requestedOrder.Destination(),
		CurrentJobID: requestedOrder.CurrentJobID(),
		Progress:     progress,
		CreatedAt:    requestedOrder.CreatedAt(),
	}, nil
}

func (h GetCreatorOrderQueryHandler) load(ctx context.Context,
	query GetCreatorOrderQuery) (*order.Order, *job.Job, *drone.Drone, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	requestedOrder, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return nil, nil, nil, err
	}
	if !requestedOrder.IsCreatedBy(query.CreatorID()) {
		return nil, nil, nil, errs.NewForbiddenError(
			"order belongs to a different user")
	}

	var currentJob *job.Job
	var assignedDrone *drone.Drone

	if jobID := requestedOrder.CurrentJobID(); jobID != nil {
		currentJob, err = uow.JobRepository().Get(ctx, *jobID)
		if err != nil {
			return nil, nil, nil, err
		}

		if droneID := currentJob.AssignedDroneID(); droneID != nil {
			assignedDrone, err = uow.DroneRepository().Get(ctx, *droneID)
			if err != nil {
				return nil, nil, nil, err
			}
		}
	}

	return requestedOrder, currentJob, assignedDrone, nil
}
