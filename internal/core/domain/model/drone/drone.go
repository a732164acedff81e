package drone

import (
	"errors"
	"fmt"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// Drone is the aggregate root for a delivery drone.
//
// Like jobs, drones carry a version counter read from storage: the current
// job pointer is written both by reservations and by terminal job
// transitions, so those writes go through the same stale-version rejection.
type Drone struct {
	id              kernel.UUID
	name            string
	status          Status
	lastCoordinate  *kernel.Coordinate
	lastHeartbeatAt *time.Time
	currentJobID    *kernel.UUID
	version         int64
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewDrone registers a drone under a unique name. Drones start Active with
// no known location until their first heartbeat.
func NewDrone(id kernel.UUID, name string) (*Drone, error) {
	drone := &Drone{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		drone.setID(id),
		drone.setName(name),
		drone.setStatus(Active),
		drone.setCreatedAt(time.Now().UTC()),
	)
	if err != nil {
		return nil, err
	}
	drone.version = 1
	return drone, nil
}

// RestoreDrone reconstructs a drone from persistence.
func RestoreDrone(id kernel.UUID, name string, status Status,
	lastCoordinate *kernel.Coordinate, lastHeartbeatAt *time.Time,
	currentJobID *kernel.UUID, version int64, createdAt time.Time) (*Drone, error) {
	drone := &Drone{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		drone.setID(id),
		drone.setName(name),
		drone.setStatus(status),
		drone.setLastCoordinate(lastCoordinate),
		drone.setCurrentJobID(currentJobID),
		drone.setVersion(version),
		drone.setCreatedAt(createdAt),
	)
	if err != nil {
		return nil, err
	}
	drone.lastHeartbeatAt = lastHeartbeatAt
	return drone, nil
}

// Validate checks that the drone was built through a constructor.
func (d *Drone) Validate() error {
	return d.guard.Validate(errs.NewInvalidStateError(
		"drone must be created via NewDrone or RestoreDrone"))
}

func (d *Drone) ID() kernel.UUID {
	return d.id
}

func (d *Drone) Name() string {
	return d.name
}

func (d *Drone) Status() Status {
	return d.status
}

// LastCoordinate returns the drone's last reported location, or nil before
// the first heartbeat.
func (d *Drone) LastCoordinate() *kernel.Coordinate {
	return d.lastCoordinate
}

// LastHeartbeatAt returns the time of the last heartbeat, or nil before the
// first one.
func (d *Drone) LastHeartbeatAt() *time.Time {
	return d.lastHeartbeatAt
}

// CurrentJobID returns the job the drone holds, or nil when idle.
func (d *Drone) CurrentJobID() *kernel.UUID {
	return d.currentJobID
}

// Version returns the optimistic-concurrency counter as last read from
// storage.
func (d *Drone) Version() int64 {
	return d.version
}

func (d *Drone) CreatedAt() time.Time {
	return d.createdAt
}

// IsAvailable reports whether the drone can take a new job: serviceable,
// idle, and with a known location.
func (d *Drone) IsAvailable() bool {
	return d.status.IsServiceable() && d.currentJobID == nil && d.lastCoordinate != nil
}

// IsHeartbeatStaleAt reports whether the drone went silent past the timeout.
// A drone that never heartbeated counts as stale.
func (d *Drone) IsHeartbeatStaleAt(now time.Time, timeout time.Duration) bool {
	if d.lastHeartbeatAt == nil {
		return true
	}
	return now.Sub(*d.lastHeartbeatAt) > timeout
}

// Heartbeat records the drone's position and the time it reported in.
func (d *Drone) Heartbeat(coordinate kernel.Coordinate) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := coordinate.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()
	d.lastCoordinate = &coordinate
	d.lastHeartbeatAt = &now
	return nil
}

// MarkBroken takes the drone out of service. Always succeeds; the handoff
// of any cargo it carries is the caller's responsibility.
func (d *Drone) MarkBroken() error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.status = Broken
	return nil
}

// MarkFixed returns a broken drone to service.
func (d *Drone) MarkFixed() error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.status = Fixed
	return nil
}

// SetStatus overrides the status directly. Breaking a drone this way skips
// the cargo handoff, so callers route Broken through MarkBroken instead.
func (d *Drone) SetStatus(status Status) error {
	if err := d.Validate(); err != nil {
		return err
	}
	return d.setStatus(status)
}

// AssignJob points the drone at the job it just reserved. A drone holds one
// job at a time; assigning the same job again is a no-op.
func (d *Drone) AssignJob(jobID kernel.UUID) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if err := jobID.Validate(); err != nil {
		return err
	}
	if d.currentJobID != nil {
		if d.currentJobID.IsEqual(jobID) {
			return nil
		}
		return errs.NewInvalidStateError(
			fmt.Sprintf("drone %s already holds job %s", d.id, d.currentJobID))
	}
	d.currentJobID = &jobID
	return nil
}

// ClearCurrentJob releases the drone when its job leaves Reserved or
// InProgress.
func (d *Drone) ClearCurrentJob() error {
	if err := d.Validate(); err != nil {
		return err
	}
	d.currentJobID = nil
	return nil
}

func (d *Drone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Drone) setName(name string) error {
	if name == "" {
		return errs.NewInvalidStateError("drone name cannot be empty")
	}
	d.name = name
	return nil
}

func (d *Drone) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Drone) setLastCoordinate(coordinate *kernel.Coordinate) error {
	if coordinate == nil {
		d.lastCoordinate = nil
		return nil
	}
	if err := coordinate.Validate(); err != nil {
		return err
	}
	d.lastCoordinate = coordinate
	return nil
}

func (d *Drone) setCurrentJobID(jobID *kernel.UUID) error {
	if jobID == nil {
		d.currentJobID = nil
		return nil
	}
	if err := jobID.Validate(); err != nil {
		return err
	}
	d.currentJobID = jobID
	return nil
}

func (d *Drone) setVersion(version int64) error {
	if version < 1 {
		return errs.NewInvalidStateError("drone version must be positive")
	}
	d.version = version
	return nil
}

func (d *Drone) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewInvalidStateError("drone creation time cannot be zero")
	}
	d.createdAt = createdAt
	return nil
}
