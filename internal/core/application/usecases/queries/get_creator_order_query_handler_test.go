package queries_test

import (
	"context"
	"testing"

	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/job"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockOrderRepository struct{ mock.Mock }

func (m *mockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *mockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderRepository) GetAllByCreator(ctx context.Context, creatorID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type mockJobRepository struct{ mock.Mock }

func (m *mockJobRepository) Add(ctx context.Context, j *job.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *mockJobRepository) Update(ctx context.Context, j *job.Job) error {
	return m.Called(ctx, j).Error(0)
}

func (m *mockJobRepository) Get(ctx context.Context, id kernel.UUID) (*job.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*job.Job), args.Error(1)
}

func (m *mockJobRepository) GetAllOpenOrderByCreatedAt(ctx context.Context) ([]*job.Job, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*job.Job), args.Error(1)
}

type mockDroneRepository struct{ mock.Mock }

func (m *mockDroneRepository) Add(ctx context.Context, d *drone.Drone) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDroneRepository) Update(ctx context.Context, d *drone.Drone) error {
	return m.Called(ctx, d).Error(0)
}

func (m *mockDroneRepository) Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *mockDroneRepository) GetByName(ctx context.Context, name string) (*drone.Drone, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *mockDroneRepository) GetAllServiceable(ctx context.Context) ([]*drone.Drone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*drone.Drone), args.Error(1)
}

type mockUnitOfWork struct {
	mock.Mock
	orderRepo ports.OrderRepository
	jobRepo   ports.JobRepository
	droneRepo ports.DroneRepository
}

func (m *mockUnitOfWork) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockUnitOfWork) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockUnitOfWork) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockUnitOfWork) OrderRepository() ports.OrderRepository {
	return m.orderRepo
}

func (m *mockUnitOfWork) JobRepository() ports.JobRepository {
	return m.jobRepo
}

func (m *mockUnitOfWork) DroneRepository() ports.DroneRepository {
	return m.droneRepo
}

func (m *mockUnitOfWork) EndUserRepository() ports.EndUserRepository {
	return nil
}

type mockUnitOfWorkFactory struct {
	uow ports.UnitOfWork
}

func (f *mockUnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.uow
}

func mustCoordinate(t *testing.T, lat, lng float64) kernel.Coordinate {
	t.Helper()
	c, err := kernel.NewCoordinate(lat, lng)
	require.NoError(t, err)
	return c
}

func newReadUoW(orderRepo *mockOrderRepository, jobRepo *mockJobRepository,
	droneRepo *mockDroneRepository) *mockUnitOfWork {
	uow := &mockUnitOfWork{
		orderRepo: orderRepo,
		jobRepo:   jobRepo,
		droneRepo: droneRepo,
	}
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	return uow
}

func TestGetCreatorOrderQueryHandler_Handle_NoDroneAssigned(t *testing.T) {
	ctx := t.Context()
	creatorID := kernel.NewUUID()
	origin := mustCoordinate(t, 1.0, 2.0)
	destination := mustCoordinate(t, 3.0, 4.0)

	testOrder, err := order.NewOrder(kernel.NewUUID(), creatorID, origin, destination)
	require.NoError(t, err)
	testJob, err := job.NewJob(testOrder.ID(), origin, destination)
	require.NoError(t, err)
	require.NoError(t, testOrder.AssignCurrentJob(testJob.ID()))

	orderRepo := new(mockOrderRepository)
	jobRepo := new(mockJobRepository)
	droneRepo := new(mockDroneRepository)
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	jobRepo.On("Get", ctx, testJob.ID()).Return(testJob, nil).Once()

	factory := &mockUnitOfWorkFactory{uow: newReadUoW(orderRepo, jobRepo, droneRepo)}
	handler := queries.NewGetCreatorOrderQueryHandler(factory)

	query, err := queries.NewGetCreatorOrderQuery(creatorID, testOrder.ID())
	require.NoError(t, err)

	resp, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.True(t, resp.ID.IsEqual(testOrder.ID()))
	assert.Equal(t, "Submitted", resp.Status)
	assert.True(t, resp.Progress.Location.IsEqual(origin))
	assert.Zero(t, resp.Progress.ETASeconds)
	droneRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestGetCreatorOrderQueryHandler_Handle_AssignedDroneDrivesProgress(t *testing.T) {
	ctx := t.Context()
	creatorID := kernel.NewUUID()
	origin := mustCoordinate(t, 1.0, 2.0)
	destination := mustCoordinate(t, 3.0, 4.0)

	testOrder, err := order.NewOrder(kernel.NewUUID(), creatorID, origin, destination)
	require.NoError(t, err)
	testJob, err := job.NewJob(testOrder.ID(), origin, destination)
	require.NoError(t, err)
	require.NoError(t, testOrder.AssignCurrentJob(testJob.ID()))

	testDrone, err := drone.NewDrone(kernel.NewUUID(), "falcon-1")
	require.NoError(t, err)
	droneLocation := mustCoordinate(t, 2.0, 3.0)
	require.NoError(t, testDrone.Heartbeat(droneLocation))
	require.NoError(t, testJob.Reserve(testDrone.ID()))

	orderRepo := new(mockOrderRepository)
	jobRepo := new(mockJobRepository)
	droneRepo := new(mockDroneRepository)
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	jobRepo.On("Get", ctx, testJob.ID()).Return(testJob, nil).Once()
	droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once()

	factory := &mockUnitOfWorkFactory{uow: newReadUoW(orderRepo, jobRepo, droneRepo)}
	handler := queries.NewGetCreatorOrderQueryHandler(factory)

	query, err := queries.NewGetCreatorOrderQuery(creatorID, testOrder.ID())
	require.NoError(t, err)

	resp, err := handler.Handle(ctx, query)
	require.NoError(t, err)

	assert.True(t, resp.Progress.Location.IsEqual(droneLocation))
	assert.Positive(t, resp.Progress.ETASeconds)
}

func TestGetCreatorOrderQueryHandler_Handle_ForbiddenForOtherUser(t *testing.T) {
	ctx := t.Context()
	origin := mustCoordinate(t, 1.0, 2.0)
	destination := mustCoordinate(t, 3.0, 4.0)

	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), origin, destination)
	require.NoError(t, err)

	orderRepo := new(mockOrderRepository)
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()

	factory := &mockUnitOfWorkFactory{
		uow: newReadUoW(orderRepo, new(mockJobRepository), new(mockDroneRepository)),
	}
	handler := queries.NewGetCreatorOrderQueryHandler(factory)

	query, err := queries.NewGetCreatorOrderQuery(kernel.NewUUID(), testOrder.ID())
	require.NoError(t, err)

	_, err = handler.Handle(ctx, query)
	require.ErrorIs(t, err, errs.ErrForbidden)
}
