package commands_test

import (
	"testing"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/job"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkDroneBrokenCommandHandler_Handle_NoCurrentJob(t *testing.T) {
	ctx := t.Context()
	testDrone := availableDrone(t, "falcon-1")

	cmd, err := commands.NewMarkDroneBrokenCommand(testDrone.ID())
	require.NoError(t, err)

	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DroneRepository").Return(droneRepo)
	droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once()
	droneRepo.On("Update", ctx, testDrone).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDroneBrokenCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, drone.Broken, testDrone.Status())
	uow.AssertExpectations(t)
	droneRepo.AssertExpectations(t)
}

func TestMarkDroneBrokenCommandHandler_Handle_ReservedJobIsLeftAlone(t *testing.T) {
	ctx := t.Context()
	testDrone := availableDrone(t, "falcon-1")
	_, testJob := submittedOrderWithJob(t, kernel.NewUUID())
	require.NoError(t, testJob.Reserve(testDrone.ID()))
	require.NoError(t, testDrone.AssignJob(testJob.ID()))

	cmd, err := commands.NewMarkDroneBrokenCommand(testDrone.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo)
	uow.On("DroneRepository").Return(droneRepo)
	droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once()
	jobRepo.On("Get", ctx, testJob.ID()).Return(testJob, nil).Once()
	droneRepo.On("Update", ctx, testDrone).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDroneBrokenCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, drone.Broken, testDrone.Status())
	assert.Nil(t, testDrone.CurrentJobID())
	// The cargo never left the warehouse, so the reservation stands.
	assert.Equal(t, job.Reserved, testJob.Status())
	assert.True(t, testJob.IsAssignedTo(testDrone.ID()))
	jobRepo.AssertNotCalled(t, "Update", ctx, testJob)
	jobRepo.AssertNotCalled(t, "Add", ctx, mock.Anything)
}

func TestMarkDroneBrokenCommandHandler_Handle_InProgressTriggersHandoff(t *testing.T) {
	ctx := t.Context()
	testDrone := availableDrone(t, "falcon-1")
	breakdownSpot := mustCoordinate(10.0, 20.0)
	require.NoError(t, testDrone.Heartbeat(breakdownSpot))

	testOrder, testJob := submittedOrderWithJob(t, kernel.NewUUID())
	require.NoError(t, testJob.Reserve(testDrone.ID()))
	require.NoError(t, testDrone.AssignJob(testJob.ID()))
	require.NoError(t, testJob.Pickup(testDrone.ID()))
	require.NoError(t, testOrder.StartDelivery())

	cmd, err := commands.NewMarkDroneBrokenCommand(testDrone.ID())
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	jobRepo := new(MockJobRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	var handoffJob *job.Job

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("JobRepository").Return(jobRepo)
	uow.On("DroneRepository").Return(droneRepo)
	droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once()
	jobRepo.On("Get", ctx, testJob.ID()).Return(testJob, nil).Once()
	orderRepo.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	jobRepo.On("Update", ctx, testJob).Return(nil).Once()
	jobRepo.On("Add", ctx, mock.AnythingOfType("*job.Job")).
		Run(func(args mock.Arguments) {
			handoffJob = args.Get(1).(*job.Job)
		}).Return(nil).Once()
	orderRepo.On("Update", ctx, testOrder).Return(nil).Once()
	droneRepo.On("Update", ctx, testDrone).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDroneBrokenCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, drone.Broken, testDrone.Status())
	assert.Nil(t, testDrone.CurrentJobID())
	assert.Equal(t, job.Failed, testJob.Status())

	require.NotNil(t, handoffJob)
	assert.Equal(t, job.HandoffPickupAndDeliver, handoffJob.Type())
	assert.Equal(t, job.Open, handoffJob.Status())
	assert.True(t, handoffJob.OrderID().IsEqual(testOrder.ID()))
	assert.True(t, handoffJob.PickupLocation().IsEqual(breakdownSpot))
	assert.True(t, handoffJob.DropoffLocation().IsEqual(testOrder.Destination()))
	require.NotNil(t, handoffJob.ExcludedDroneID())
	assert.True(t, handoffJob.ExcludedDroneID().IsEqual(testDrone.ID()))

	assert.Equal(t, order.HandoffRequested, testOrder.Status())
	require.NotNil(t, testOrder.CurrentJobID())
	assert.True(t, testOrder.CurrentJobID().IsEqual(handoffJob.ID()))

	orderRepo.AssertExpectations(t)
	jobRepo.AssertExpectations(t)
	droneRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkDroneBrokenCommandHandler_Handle_CarryingCargoWithoutLocation(t *testing.T) {
	ctx := t.Context()
	testDrone, err := drone.NewDrone(kernel.NewUUID(), "falcon-1")
	require.NoError(t, err)

	testOrder, testJob := submittedOrderWithJob(t, kernel.NewUUID())
	require.NoError(t, testJob.Reserve(testDrone.ID()))
	require.NoError(t, testDrone.AssignJob(testJob.ID()))
	require.NoError(t, testJob.Pickup(testDrone.ID()))
	require.NoError(t, testOrder.StartDelivery())

	cmd, err := commands.NewMarkDroneBrokenCommand(testDrone.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo)
	uow.On("DroneRepository").Return(droneRepo)
	droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once()
	jobRepo.On("Get", ctx, testJob.ID()).Return(testJob, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkDroneBrokenCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	uow.AssertNotCalled(t, "Commit", ctx)
}
