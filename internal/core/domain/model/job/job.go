package job

import (
	"errors"
	"fmt"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// Job is the aggregate root for one delivery leg of an order.
//
// The version field holds the value read from storage; the persistence layer
// increments it on every successful write and rejects writes against a stale
// version, which is how racing reservations resolve to a single winner.
type Job struct {
	id              kernel.UUID
	orderID         kernel.UUID
	jobType         Type
	status          Status
	pickup          kernel.Coordinate
	dropoff         kernel.Coordinate
	assignedDroneID *kernel.UUID
	excludedDroneID *kernel.UUID
	version         int64
	reservedAt      *time.Time
	startedAt       *time.Time
	completedAt     *time.Time
	failedAt        *time.Time
	createdAt       time.Time

	guard guard.ConstructorGuard
}

// NewJob creates the initial Open leg for a freshly submitted order.
func NewJob(orderID kernel.UUID, pickup, dropoff kernel.Coordinate) (*Job, error) {
	return newJob(orderID, PickupAndDeliver, pickup, dropoff, nil)
}

// NewHandoffJob creates the replacement leg after a breakdown. The broken
// drone is recorded as excluded and can never reserve this job, even after
// it is fixed.
func NewHandoffJob(orderID kernel.UUID, pickup, dropoff kernel.Coordinate,
	excludedDroneID kernel.UUID) (*Job, error) {
	if err := excludedDroneID.Validate(); err != nil {
		return nil, err
	}
	return newJob(orderID, HandoffPickupAndDeliver, pickup, dropoff, &excludedDroneID)
}

func newJob(orderID kernel.UUID, jobType Type, pickup, dropoff kernel.Coordinate,
	excludedDroneID *kernel.UUID) (*Job, error) {
	job := &Job{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		job.setID(kernel.NewUUID()),
		job.setOrderID(orderID),
		job.setType(jobType),
		job.setStatus(Open),
		job.setPickup(pickup),
		job.setDropoff(dropoff),
		job.setCreatedAt(time.Now().UTC()),
	)
	if err != nil {
		return nil, err
	}
	job.excludedDroneID = excludedDroneID
	job.version = 1
	return job, nil
}

// RestoreJob reconstructs a job from persistence.
func RestoreJob(id, orderID kernel.UUID, jobType Type, status Status,
	pickup, dropoff kernel.Coordinate, assignedDroneID, excludedDroneID *kernel.UUID,
	version int64, reservedAt, startedAt, completedAt, failedAt *time.Time,
	createdAt time.Time) (*Job, error) {
	job := &Job{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		job.setID(id),
		job.setOrderID(orderID),
		job.setType(jobType),
		job.setStatus(status),
		job.setPickup(pickup),
		job.setDropoff(dropoff),
		job.setAssignedDroneID(assignedDroneID),
		job.setExcludedDroneID(excludedDroneID),
		job.setVersion(version),
		job.setCreatedAt(createdAt),
	)
	if err != nil {
		return nil, err
	}
	job.reservedAt = reservedAt
	job.startedAt = startedAt
	job.completedAt = completedAt
	job.failedAt = failedAt
	return job, nil
}

// Validate checks that the job was built through a constructor.
func (j *Job) Validate() error {
	return j.guard.Validate(errs.NewInvalidStateError(
		"job must be created via NewJob, NewHandoffJob, or RestoreJob"))
}

func (j *Job) ID() kernel.UUID {
	return j.id
}

func (j *Job) OrderID() kernel.UUID {
	return j.orderID
}

func (j *Job) Type() Type {
	return j.jobType
}

func (j *Job) Status() Status {
	return j.status
}

func (j *Job) PickupLocation() kernel.Coordinate {
	return j.pickup
}

func (j *Job) DropoffLocation() kernel.Coordinate {
	return j.dropoff
}

// AssignedDroneID returns the reserving drone, or nil unless the job is
// Reserved or InProgress.
func (j *Job) AssignedDroneID() *kernel.UUID {
	return j.assignedDroneID
}

// ExcludedDroneID returns the permanently disqualified drone, or nil for
// jobs of type PickupAndDeliver.
func (j *Job) ExcludedDroneID() *kernel.UUID {
	return j.excludedDroneID
}

// Version returns the optimistic-concurrency counter as last read from
// storage.
func (j *Job) Version() int64 {
	return j.version
}

func (j *Job) ReservedAt() *time.Time {
	return j.reservedAt
}

func (j *Job) StartedAt() *time.Time {
	return j.startedAt
}

func (j *Job) CompletedAt() *time.Time {
	return j.completedAt
}

func (j *Job) FailedAt() *time.Time {
	return j.failedAt
}

func (j *Job) CreatedAt() time.Time {
	return j.createdAt
}

// IsAssignedTo reports whether the given drone currently holds the job.
func (j *Job) IsAssignedTo(droneID kernel.UUID) bool {
	return j.assignedDroneID != nil && j.assignedDroneID.IsEqual(droneID)
}

// IsExcluded reports whether the given drone is permanently barred from the
// job.
func (j *Job) IsExcluded(droneID kernel.UUID) bool {
	return j.excludedDroneID != nil && j.excludedDroneID.IsEqual(droneID)
}

// Reserve claims the job for a drone. Excluded drones are rejected with
// Forbidden; a job that already left Open is rejected with Conflict, since
// the caller lost the race for it.
func (j *Job) Reserve(droneID kernel.UUID) error {
	if err := j.Validate(); err != nil {
		return err
	}
	if err := droneID.Validate(); err != nil {
		return err
	}
	if j.IsExcluded(droneID) {
		return errs.NewForbiddenError(
			fmt.Sprintf("drone %s is excluded from job %s", droneID, j.id))
	}
	if j.status != Open {
		return errs.NewConflictError("job", j.id.String())
	}

	now := time.Now().UTC()
	j.status = Reserved
	j.assignedDroneID = &droneID
	j.reservedAt = &now
	return nil
}

// Pickup marks the cargo as collected by the reserving drone.
func (j *Job) Pickup(droneID kernel.UUID) error {
	if err := j.Validate(); err != nil {
		return err
	}
	if !j.IsAssignedTo(droneID) {
		return errs.NewForbiddenError(
			fmt.Sprintf("job %s is not assigned to drone %s", j.id, droneID))
	}
	if j.status != Reserved {
		return errs.NewInvalidStateError(
			fmt.Sprintf("job in status %s cannot be picked up", j.status))
	}

	now := time.Now().UTC()
	j.status = InProgress
	j.startedAt = &now
	return nil
}

// Complete finishes the job. The assigned drone reference is cleared
// because terminal jobs hold no drone.
func (j *Job) Complete(droneID kernel.UUID) error {
	if err := j.Validate(); err != nil {
		return err
	}
	if !j.IsAssignedTo(droneID) {
		return errs.NewForbiddenError(
			fmt.Sprintf("job %s is not assigned to drone %s", j.id, droneID))
	}
	if j.status != InProgress {
		return errs.NewInvalidStateError(
			fmt.Sprintf("job in status %s cannot be completed", j.status))
	}

	now := time.Now().UTC()
	j.status = Completed
	j.completedAt = &now
	j.assignedDroneID = nil
	return nil
}

// Fail marks the job as failed, either self-reported by the assigned drone
// or forced by a breakdown.
func (j *Job) Fail(droneID kernel.UUID) error {
	if err := j.Validate(); err != nil {
		return err
	}
	if !j.IsAssignedTo(droneID) {
		return errs.NewForbiddenError(
			fmt.Sprintf("job %s is not assigned to drone %s", j.id, droneID))
	}
	if j.status != InProgress {
		return errs.NewInvalidStateError(
			fmt.Sprintf("job in status %s cannot fail", j.status))
	}

	now := time.Now().UTC()
	j.status = Failed
	j.failedAt = &now
	j.assignedDroneID = nil
	return nil
}

// Cancel withdraws the job together with its order. Picked-up and terminal
// jobs cannot be withdrawn.
func (j *Job) Cancel() error {
	if err := j.Validate(); err != nil {
		return err
	}
	if j.status != Open && j.status != Reserved {
		return errs.NewInvalidStateError(
			fmt.Sprintf("job in status %s cannot be withdrawn", j.status))
	}

	j.status = Canceled
	j.assignedDroneID = nil
	return nil
}

// UpdateDropoff changes the destination. Not allowed once the cargo is
// picked up or the job is terminal.
func (j *Job) UpdateDropoff(dropoff kernel.Coordinate) error {
	if err := j.Validate(); err != nil {
		return err
	}
	if j.status != Open && j.status != Reserved {
		return errs.NewInvalidStateError(
			fmt.Sprintf("job in status %s cannot change its dropoff", j.status))
	}
	return j.setDropoff(dropoff)
}

// UpdatePickup changes the pickup point. Only the initial leg allows it: a
// handoff leg picks up wherever the broken drone stopped.
func (j *Job) UpdatePickup(pickup kernel.Coordinate) error {
	if err := j.Validate(); err != nil {
		return err
	}
	if j.jobType != PickupAndDeliver {
		return errs.NewInvalidStateError(
			fmt.Sprintf("job of type %s cannot change its pickup", j.jobType))
	}
	if j.status != Open && j.status != Reserved {
		return errs.NewInvalidStateError(
			fmt.Sprintf("job in status %s cannot change its pickup", j.status))
	}
	return j.setPickup(pickup)
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	j.orderID = orderID
	return nil
}

func (j *Job) setType(jobType Type) error {
	if err := jobType.Validate(); err != nil {
		return err
	}
	j.jobType = jobType
	return nil
}

func (j *Job) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	j.status = status
	return nil
}

func (j *Job) setPickup(pickup kernel.Coordinate) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	j.pickup = pickup
	return nil
}

func (j *Job) setDropoff(dropoff kernel.Coordinate) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	j.dropoff = dropoff
	return nil
}

func (j *Job) setAssignedDroneID(droneID *kernel.UUID) error {
	if droneID == nil {
		j.assignedDroneID = nil
		return nil
	}
	if err := droneID.Validate(); err != nil {
		return err
	}
	j.assignedDroneID = droneID
	return nil
}

func (j *Job) setExcludedDroneID(droneID *kernel.UUID) error {
	if droneID == nil {
		j.excludedDroneID = nil
		return nil
	}
	if err := droneID.Validate(); err != nil {
		return err
	}
	j.excludedDroneID = droneID
	return nil
}

func (j *Job) setVersion(version int64) error {
	if version < 1 {
		return errs.NewInvalidStateError("job version must be positive")
	}
	j.version = version
	return nil
}

func (j *Job) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewInvalidStateError("job creation time cannot be zero")
	}
	j.createdAt = createdAt
	return nil
}
