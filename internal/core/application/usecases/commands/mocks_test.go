package commands_test

import (
	"context"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/enduser"
	"dronedelivery/internal/core/domain/model/job"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllByCreator(ctx context.Context, creatorID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockJobRepository struct{ mock.Mock }

func (m *MockJobRepository) Add(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Update(ctx context.Context, j *job.Job) error {
	args := m.Called(ctx, j)
	return args.Error(0)
}

func (m *MockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *MockJobRepository) GetAllOpenOrderByCreatedAt(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type MockDroneRepository struct{ mock.Mock }

func (m *MockDroneRepository) Add(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDroneRepository) Update(ctx context.Context, d *drone.Drone) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDroneRepository) Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *MockDroneRepository) GetByName(ctx context.Context, name string) (*drone.Drone, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *MockDroneRepository) GetAllServiceable(ctx context.Context) ([]*drone.Drone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*drone.Drone), args.Error(1)
}

type MockEndUserRepository struct{ mock.Mock }

func (m *MockEndUserRepository) Add(ctx context.Context, u *enduser.EndUser) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockEndUserRepository) Get(ctx context.Context, id kernel.UUID) (*enduser.EndUser, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enduser.EndUser), args.Error(1)
}

func (m *MockEndUserRepository) GetByName(ctx context.Context, name string) (*enduser.EndUser, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*enduser.EndUser), args.Error(1)
}

// MockUoW satisfies every unit of work interface in this package, so tests
// wire only the repositories a handler actually touches.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) JobRepository() ports.JobRepository {
	args := m.Called()
	return args.Get(0).(ports.JobRepository)
}

func (m *MockUoW) DroneRepository() ports.DroneRepository {
	args := m.Called()
	return args.Get(0).(ports.DroneRepository)
}

func (m *MockUoW) EndUserRepository() ports.EndUserRepository {
	args := m.Called()
	return args.Get(0).(ports.EndUserRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockDroneUoWFactory struct{ mock.Mock }

func (m *MockDroneUoWFactory) Create() commands.DroneUoW {
	args := m.Called()
	return args.Get(0).(commands.DroneUoW)
}

type MockOrderJobUoWFactory struct{ mock.Mock }

func (m *MockOrderJobUoWFactory) Create() commands.OrderJobUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderJobUoW)
}

type MockEndUserUoWFactory struct{ mock.Mock }

func (m *MockEndUserUoWFactory) Create() commands.EndUserUoW {
	args := m.Called()
	return args.Get(0).(commands.EndUserUoW)
}

func mustCoordinate(lat, lng float64) kernel.Coordinate {
	c, err := kernel.NewCoordinate(lat, lng)
	if err != nil {
		panic(err)
	}
	return c
}
