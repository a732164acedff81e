// Package enduser contains the end-user entity. End users only matter as
// order owners; they carry no behavior beyond their identity.
package enduser

import (
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// EndUser identifies an actor who submits orders. Users are created lazily
// on first lookup by unique name.
type EndUser struct {
	id        kernel.UUID
	name      string
	createdAt time.Time

	guard guard.ConstructorGuard
}

// NewEndUser registers a user under a unique name.
func NewEndUser(id kernel.UUID, name string) (*EndUser, error) {
	user := &EndUser{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setCreatedAt(time.Now().UTC()),
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RestoreEndUser reconstructs a user from persistence.
func RestoreEndUser(id kernel.UUID, name string, createdAt time.Time) (*EndUser, error) {
	user := &EndUser{
		guard: guard.NewConstructorGuard(),
	}

	err := errors.Join(
		user.setID(id),
		user.setName(name),
		user.setCreatedAt(createdAt),
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Validate checks that the user was built through a constructor.
func (u *EndUser) Validate() error {
	return u.guard.Validate(errs.NewInvalidStateError(
		"end user must be created via NewEndUser or RestoreEndUser"))
}

func (u *EndUser) ID() kernel.UUID {
	return u.id
}

func (u *EndUser) Name() string {
	return u.name
}

func (u *EndUser) CreatedAt() time.Time {
	return u.createdAt
}

func (u *EndUser) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *EndUser) setName(name string) error {
	if name == "" {
		return errs.NewInvalidStateError("end user name cannot be empty")
	}
	u.name = name
	return nil
}

func (u *EndUser) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewInvalidStateError("end user creation time cannot be zero")
	}
	u.createdAt = createdAt
	return nil
}
