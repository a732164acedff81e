// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"dronedelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. These abstractions ensure data consistency across aggregate
// boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a
	// transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// JobRepoFactory provides access to the job repository within a
	// transaction.
	JobRepoFactory interface {
		JobRepository() ports.JobRepository
	}

	// DroneRepoFactory provides access to the drone repository within a
	// transaction.
	DroneRepoFactory interface {
		DroneRepository() ports.DroneRepository
	}

	// EndUserRepoFactory provides access to the end-user repository within
	// a transaction.
	EndUserRepoFactory interface {
		EndUserRepository() ports.EndUserRepository
	}

	// DroneUoW manages transactions for drone-only operations such as
	// heartbeats and repairs.
	DroneUoW interface {
		TxManager
		DroneRepoFactory
	}

	// DroneUoWFactory creates new drone unit of work instances.
	DroneUoWFactory interface {
		Create() DroneUoW
	}

	// EndUserUoW manages transactions for end-user registration.
	EndUserUoW interface {
		TxManager
		EndUserRepoFactory
	}

	// EndUserUoWFactory creates new end-user unit of work instances.
	EndUserUoWFactory interface {
		Create() EndUserUoW
	}

	// OrderJobUoW manages transactions spanning an order and its jobs.
	// Used for submission and admin updates, where no drone is touched.
	OrderJobUoW interface {
		TxManager
		OrderRepoFactory
		JobRepoFactory
	}

	// OrderJobUoWFactory creates new order/job unit of work instances.
	OrderJobUoWFactory interface {
		Create() OrderJobUoW
	}

	// UoW manages transactions across orders, jobs, and drones. Used for
	// the reservation protocol, the delivery lifecycle, and the breakdown
	// handoff, which all touch every aggregate type.
	UoW interface {
		TxManager
		OrderRepoFactory
		JobRepoFactory
		DroneRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate
	// operations.
	UoWFactory interface {
		Create() UoW
	}
)
