package job

import (
	"fmt"
	"strings"

	"dronedelivery/internal/pkg/errs"
)

// Type distinguishes the initial delivery leg from a handoff leg.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// PickupAndDeliver is the initial leg created with the order. Pickup
	// is the order origin, dropoff is the order destination.
	PickupAndDeliver

	// HandoffPickupAndDeliver is a replacement leg created when the
	// carrying drone broke down. Pickup is the broken drone's last known
	// coordinate, and that drone is permanently excluded from the job.
	HandoffPickupAndDeliver
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:             "Unknown",
		PickupAndDeliver:        "PickupAndDeliver",
		HandoffPickupAndDeliver: "HandoffPickupAndDeliver",
	}
}

// TypeFromString parses a type name, case-insensitively.
func TypeFromString(s string) (Type, error) {
	for jobType, name := range getTypeStrings() {
		if jobType != TypeUnknown && strings.EqualFold(name, s) {
			return jobType, nil
		}
	}
	return TypeUnknown, errs.NewInvalidStateError(
		fmt.Sprintf("%q is not a valid job type", s))
}

// Validate checks that the Type is one of the defined job types.
func (t Type) Validate() error {
	if t == TypeUnknown {
		return errs.NewInvalidStateError("job type is unknown")
	}
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewInvalidStateError(fmt.Sprintf("%d is not a valid job type", t))
	}
	return nil
}

// String returns the human-readable name of the type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
