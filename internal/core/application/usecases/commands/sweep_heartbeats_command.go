package commands

import (
	"errors"
	"time"

	"dronedelivery/internal/pkg/guard"
)

var (
	ErrSweepHeartbeatsCommandIsNotConstructed = errors.New(
		"SweepHeartbeatsCommand must be created via NewSweepHeartbeatsCommand constructor",
	)
	ErrTimeoutIsInvalid = errors.New("heartbeat timeout must be greater than 0")
)

// SweepHeartbeatsCommand triggers one stale-heartbeat sweep with the given
// timeout.
type SweepHeartbeatsCommand struct { //nolint:recvcheck //using for validation
	timeout time.Duration

	guard guard.ConstructorGuard
}

// NewSweepHeartbeatsCommand creates a command to sweep drones that have
// been silent longer than the timeout.
func NewSweepHeartbeatsCommand(timeout time.Duration) (SweepHeartbeatsCommand, error) {
	command := SweepHeartbeatsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTimeout(timeout); err != nil {
		return SweepHeartbeatsCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c SweepHeartbeatsCommand) Validate() error {
	return c.guard.Validate(ErrSweepHeartbeatsCommandIsNotConstructed)
}

// Timeout returns the staleness threshold.
func (c SweepHeartbeatsCommand) Timeout() time.Duration {
	return c.timeout
}

func (c *SweepHeartbeatsCommand) setTimeout(timeout time.Duration) error {
	if timeout <= 0 {
		return ErrTimeoutIsInvalid
	}
	c.timeout = timeout
	return nil
}
