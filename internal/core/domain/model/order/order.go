package order

import (
	"errors"
	"fmt"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// Order is the aggregate root for a delivery request. It tracks where the
// cargo starts and must end up, who asked for it, and which job is
// currently responsible for moving it.
type Order struct {
	id           kernel.UUID
	createdBy    kernel.UUID
	origin       kernel.Coordinate
	destination  kernel.Coordinate
	status       Status
	currentJobID *kernel.UUID
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in the Submitted status. The current job is
// attached separately once the first job aggregate exists.
func NewOrder(id, createdBy kernel.UUID, origin, destination kernel.Coordinate) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		order.setID(id),
		order.setCreatedBy(createdBy),
		order.setOrigin(origin),
		order.setDestination(destination),
		order.setStatus(Submitted),
		order.setCreatedAt(time.Now().UTC()),
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// RestoreOrder reconstructs an order from persistence without running the
// creation-time business rules.
func RestoreOrder(id, createdBy kernel.UUID, origin, destination kernel.Coordinate,
	status Status, currentJobID *kernel.UUID, createdAt time.Time) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		order.setID(id),
		order.setCreatedBy(createdBy),
		order.setOrigin(origin),
		order.setDestination(destination),
		order.setStatus(status),
		order.setCurrentJobID(currentJobID),
		order.setCreatedAt(createdAt),
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Validate checks that the order was built through a constructor.
func (o *Order) Validate() error {
	return o.guard.Validate(errs.NewInvalidStateError(
		"order must be created via NewOrder or RestoreOrder"))
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

func (o *Order) Origin() kernel.Coordinate {
	return o.origin
}

func (o *Order) Destination() kernel.Coordinate {
	return o.destination
}

func (o *Order) Status() Status {
	return o.status
}

// CurrentJobID returns the job currently carrying the order, or nil for
// orders that reached a terminal status.
func (o *Order) CurrentJobID() *kernel.UUID {
	return o.currentJobID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsCreatedBy reports whether the given user created the order.
func (o *Order) IsCreatedBy(userID kernel.UUID) bool {
	return o.createdBy.IsEqual(userID)
}

// AssignCurrentJob attaches the job that carries the order from now on.
func (o *Order) AssignCurrentJob(jobID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := jobID.Validate(); err != nil {
		return err
	}
	o.currentJobID = &jobID
	return nil
}

// Cancel withdraws the order. Delivered and Failed orders cannot be
// withdrawn. The current job pointer is cleared because terminal orders
// carry no active job.
func (o *Order) Cancel() error {
	if err := o.Validate(); err != nil {
		return err
	}

	next, err := o.status.Cancel()
	if err != nil {
		return err
	}
	o.status = next
	o.currentJobID = nil
	return nil
}

// StartDelivery marks the order as picked up by a drone.
func (o *Order) StartDelivery() error {
	if err := o.Validate(); err != nil {
		return err
	}

	next, err := o.status.StartDelivery()
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

// Deliver completes the order.
func (o *Order) Deliver() error {
	if err := o.Validate(); err != nil {
		return err
	}

	next, err := o.status.Deliver()
	if err != nil {
		return err
	}
	o.status = next
	o.currentJobID = nil
	return nil
}

// Fail marks the order as failed without a handoff.
func (o *Order) Fail() error {
	if err := o.Validate(); err != nil {
		return err
	}

	next, err := o.status.Fail()
	if err != nil {
		return err
	}
	o.status = next
	o.currentJobID = nil
	return nil
}

// RequestHandoff switches the order onto a freshly opened handoff job after
// the carrying drone broke mid-delivery.
func (o *Order) RequestHandoff(newJobID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := newJobID.Validate(); err != nil {
		return err
	}

	next, err := o.status.RequestHandoff()
	if err != nil {
		return err
	}
	o.status = next
	o.currentJobID = &newJobID
	return nil
}

// UpdateOrigin changes the pickup point. Only allowed while the order is
// still Submitted: once a drone is involved the route is fixed.
func (o *Order) UpdateOrigin(origin kernel.Coordinate) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != Submitted {
		return errs.NewInvalidStateError(
			fmt.Sprintf("order in status %s cannot change its origin", o.status))
	}
	return o.setOrigin(origin)
}

// UpdateDestination changes the dropoff point. Allowed while the order is
// Submitted or still moving; terminal orders are immutable.
func (o *Order) UpdateDestination(destination kernel.Coordinate) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidStateError(
			fmt.Sprintf("order in terminal status %s cannot change its destination", o.status))
	}
	return o.setDestination(destination)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCreatedBy(createdBy kernel.UUID) error {
	if err := createdBy.Validate(); err != nil {
		return err
	}
	o.createdBy = createdBy
	return nil
}

func (o *Order) setOrigin(origin kernel.Coordinate) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	o.origin = origin
	return nil
}

func (o *Order) setDestination(destination kernel.Coordinate) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCurrentJobID(jobID *kernel.UUID) error {
	if jobID == nil {
		o.currentJobID = nil
		return nil
	}
	if err := jobID.Validate(); err != nil {
		return err
	}
	o.currentJobID = jobID
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewInvalidStateError("order creation time cannot be zero")
	}
	o.createdAt = createdAt
	return nil
}
