package order

import (
	"fmt"
	"strings"

	"dronedelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery order.
//
// State transitions:
//
//	Submitted ──┬──> InDelivery ──┬──> Delivered
//	            │        │        └──> Failed
//	            │        └──> HandoffRequested ──> InDelivery
//	            └──> Canceled          │
//	                  ^────────────────┘
//
// Canceled, Delivered, and Failed are terminal; no transition leaves them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Submitted is the initial status: the order has an Open job waiting
	// for a drone.
	Submitted

	// Canceled means the creator withdrew the order before pickup.
	Canceled

	// InDelivery means a drone has picked up the cargo.
	InDelivery

	// HandoffRequested means the carrying drone broke mid-delivery and a
	// replacement job is open for the cargo.
	HandoffRequested

	// Delivered means the cargo reached its destination.
	Delivered

	// Failed means the current job failed without a handoff.
	Failed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:          "Unknown",
		Submitted:        "Submitted",
		Canceled:         "Canceled",
		InDelivery:       "InDelivery",
		HandoffRequested: "HandoffRequested",
		Delivered:        "Delivered",
		Failed:           "Failed",
	}
}

// StatusFromString parses a status name, case-insensitively.
func StatusFromString(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewInvalidStateError(
		fmt.Sprintf("%q is not a valid order status", s))
}

// Validate checks that the Status is one of the defined order states.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewInvalidStateError("order status is unknown")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewInvalidStateError(fmt.Sprintf("%d is not a valid order status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Canceled || s == Delivered || s == Failed
}

// Cancel transitions the status to Canceled. Orders that already reached
// Delivered or Failed cannot be withdrawn.
func (s Status) Cancel() (Status, error) {
	if s == Delivered || s == Failed {
		return 0, errs.NewInvalidStateError(
			fmt.Sprintf("order in status %s is finished and cannot be withdrawn", s))
	}
	return Canceled, nil
}

// StartDelivery transitions the status to InDelivery when a drone picks up
// the cargo, either on the initial leg or on a handoff leg.
func (s Status) StartDelivery() (Status, error) {
	if s.IsTerminal() {
		return 0, errs.NewInvalidStateError(
			fmt.Sprintf("order in terminal status %s cannot enter delivery", s))
	}
	return InDelivery, nil
}

// Deliver transitions the status to Delivered.
func (s Status) Deliver() (Status, error) {
	if s != InDelivery {
		return 0, errs.NewInvalidStateError(
			fmt.Sprintf("order in status %s cannot be delivered", s))
	}
	return Delivered, nil
}

// Fail transitions the status to Failed.
func (s Status) Fail() (Status, error) {
	if s != InDelivery {
		return 0, errs.NewInvalidStateError(
			fmt.Sprintf("order in status %s cannot fail", s))
	}
	return Failed, nil
}

// RequestHandoff transitions the status to HandoffRequested when the
// carrying drone breaks mid-delivery.
func (s Status) RequestHandoff() (Status, error) {
	if s != InDelivery {
		return 0, errs.NewInvalidStateError(
			fmt.Sprintf("order in status %s cannot request a handoff", s))
	}
	return HandoffRequested, nil
}
