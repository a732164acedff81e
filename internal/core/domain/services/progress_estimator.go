package services

import (
	"fmt"
	"math"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/job"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
)

// averageSpeedMetersPerSecond is the coarse cruise speed used for ETA
// estimates.
const averageSpeedMetersPerSecond = 12.0

// Progress is a coarse view of where an order's cargo is and when it should
// arrive.
type Progress struct {
	Location   kernel.Coordinate
	ETASeconds int64
}

// ProgressEstimator is a domain service that derives an order's progress
// from its current job and the assigned drone's last reported position.
type ProgressEstimator struct{}

// NewProgressEstimator creates a new ProgressEstimator instance.
func NewProgressEstimator() ProgressEstimator {
	return ProgressEstimator{}
}

// Estimate computes a location and ETA for the order.
//
// With no drone assigned yet (assignedDrone may be nil), nothing has moved:
// the order's origin with ETA 0 is reported. An assigned drone that never
// heartbeated is an invalid state, since there is no position to estimate
// from. Otherwise the ETA is the great-circle distance from the drone to
// the job's dropoff at average cruise speed, rounded to whole seconds.
func (e ProgressEstimator) Estimate(o *order.Order, currentJob *job.Job,
	assignedDrone *drone.Drone) (Progress, error) {
	if err := o.Validate(); err != nil {
		return Progress{}, err
	}
	if err := currentJob.Validate(); err != nil {
		return Progress{}, err
	}

	if assignedDrone == nil {
		return Progress{Location: o.Origin(), ETASeconds: 0}, nil
	}
	if err := assignedDrone.Validate(); err != nil {
		return Progress{}, err
	}

	location := assignedDrone.LastCoordinate()
	if location == nil {
		return Progress{}, errs.NewInvalidStateError(
			fmt.Sprintf("drone %s has no known location", assignedDrone.ID()))
	}

	distance, err := location.DistanceMeters(currentJob.DropoffLocation())
	if err != nil {
		return Progress{}, err
	}

	eta := int64(math.Round(distance / averageSpeedMetersPerSecond))
	if eta < 0 {
		eta = 0
	}
	return Progress{Location: *location, ETASeconds: eta}, nil
}
