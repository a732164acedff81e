package drone

import (
	"fmt"
	"strings"

	"dronedelivery/internal/pkg/errs"
)

// Status represents the operational state of a drone. Active and Fixed are
// both serviceable; Broken drones cannot reserve jobs until fixed.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Active is the initial serviceable state.
	Active

	// Broken means the drone reported a breakdown or went silent past the
	// heartbeat timeout.
	Broken

	// Fixed means a previously broken drone was repaired and is
	// serviceable again.
	Fixed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown: "Unknown",
		Active:  "Active",
		Broken:  "Broken",
		Fixed:   "Fixed",
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
		fmt.Sprintf("%q is not a valid drone status", s))
}

// Validate checks that the Status is one of the defined drone states.
func (s Status) Validate() error {
	if s == Unknown {
		return errs.NewInvalidStateError("drone status is unknown")
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewInvalidStateError(fmt.Sprintf("%d is not a valid drone status", s))
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

// IsServiceable reports whether the drone can fly jobs.
func (s Status) IsServiceable() bool {
	return s == Active || s == Fixed
}
