package services

import (
	"errors"
	"math"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/job"
)

// ErrDroneNotFound is returned when no suitable drone is available for a
// job. This occurs when the candidate slice is empty or every candidate is
// either unavailable or excluded from the job.
var ErrDroneNotFound = errors.New("drone not found")

// JobDispatcher is a domain service that picks the best drone for an open
// job.
//
// Selection rules:
//   - Only available drones are considered: serviceable, idle, and with a
//     known last coordinate.
//   - The job's excluded drone is never considered, whatever its status.
//   - The drone nearest to the job's pickup point wins; ties go to the
//     first candidate in slice order.
//
// The dispatcher only selects. Committing the pairing is the caller's
// responsibility, through the version-guarded reservation write.
type JobDispatcher struct{}

// NewJobDispatcher creates a new JobDispatcher instance.
func NewJobDispatcher() JobDispatcher {
	return JobDispatcher{}
}

// SelectDrone returns the nearest available candidate for the job, or
// ErrDroneNotFound when no candidate qualifies.
func (d JobDispatcher) SelectDrone(j *job.Job, candidates []*drone.Drone) (*drone.Drone, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	var (
		bestDrone    *drone.Drone
		bestDistance = math.MaxFloat64
	)

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}
		if !candidate.IsAvailable() || j.IsExcluded(candidate.ID()) {
			continue
		}

		distance, err := j.PickupLocation().DistanceMeters(*candidate.LastCoordinate())
		if err != nil {
			return nil, err
		}
		if distance < bestDistance {
			bestDistance = distance
			bestDrone = candidate
		}
	}

	if bestDrone == nil {
		return nil, ErrDroneNotFound
	}
	return bestDrone, nil
}
