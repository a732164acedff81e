package job

import (
	"fmt"
	"strings"

	"dronedelivery/internal/pkg/errs"
)

// Status represents the lifecycle state of a job.
//
// State transitions:
//
//	Open ──┬──> Reserved ──┬──> InProgress ──┬──> Completed
//	       │       │       │                 └──> Failed
//	       │       └───────┴──> Canceled
//	       └──> Canceled
//
// Completed, Failed, and Canceled are terminal. A job never returns to Open.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Open means the job is waiting for a drone to claim it.
	Open

	// Reserved means a drone has claimed the job but has not picked up
	// the cargo yet.
	Reserved

	// InProgress means the assigned drone is carrying the cargo.
	InProgress

	// Completed means the cargo was delivered.
	Completed

	// Failed means the leg failed, either reported by the drone or forced
	// by a breakdown.
	Failed

	// Canceled means the job was withdrawn together with its order.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Open:       "Open",
		Reserved:   "Reserved",
		InProgress: "InProgress",
		Completed:  "Completed",
		Failed:     "Failed",
		Canceled:   "Canceled",
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
		fmt.Sprintf("%q is not a valid job status", s))
}

// Validate checks that the Status is one of the defined job states.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewInvalidStateError("job status is unknown")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewInvalidStateError(fmt.Sprintf("%d is not a valid job status", s))
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
	return s == Completed || s == Failed || s == Canceled
}
