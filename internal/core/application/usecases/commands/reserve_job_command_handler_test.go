package commands_test

import (
	"testing"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/job"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func availableDrone(t *testing.T, name string) *drone.Drone {
	t.Helper()
	d, err := drone.NewDrone(kernel.NewUUID(), name)
	require.NoError(t, err)
	require.NoError(t, d.Heartbeat(mustCoordinate(1.0, 2.0)))
	return d
}

func openJob(t *testing.T) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(),
		mustCoordinate(1.0, 2.0), mustCoordinate(3.0, 4.0))
	require.NoError(t, err)
	return j
}

func TestReserveJobCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testDrone := availableDrone(t, "falcon-1")
	testJob := openJob(t)

	cmd, err := commands.NewReserveJobCommand(testDrone.ID(), testJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo)
	uow.On("DroneRepository").Return(droneRepo)
	droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once()
	jobRepo.On("Get", ctx, testJob.ID()).Return(testJob, nil).Once()
	jobRepo.On("Update", ctx, testJob).Return(nil).Once()
	droneRepo.On("Update", ctx, testDrone).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReserveJobCommandHandler(factory)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, job.Reserved, testJob.Status())
	assert.True(t, testJob.IsAssignedTo(testDrone.ID()))
	require.NotNil(t, testDrone.CurrentJobID())
	assert.True(t, testDrone.CurrentJobID().IsEqual(testJob.ID()))

	jobRepo.AssertExpectations(t)
	droneRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReserveJobCommandHandler_Handle_AlreadyReserved(t *testing.T) {
	ctx := t.Context()
	testDrone := availableDrone(t, "falcon-1")
	testJob := openJob(t)
	require.NoError(t, testJob.Reserve(kernel.NewUUID()))

	cmd, err := commands.NewReserveJobCommand(testDrone.ID(), testJob.ID())
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

	handler := commands.NewReserveJobCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Nil(t, testDrone.CurrentJobID())
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestReserveJobCommandHandler_Handle_LostVersionRace(t *testing.T) {
	ctx := t.Context()
	testDrone := availableDrone(t, "falcon-1")
	testJob := openJob(t)

	cmd, err := commands.NewReserveJobCommand(testDrone.ID(), testJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo)
	uow.On("DroneRepository").Return(droneRepo)
	droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once()
	jobRepo.On("Get", ctx, testJob.ID()).Return(testJob, nil).Once()
	jobRepo.On("Update", ctx, testJob).
		Return(errs.NewConflictError("job", testJob.ID().String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReserveJobCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConflict)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestReserveJobCommandHandler_Handle_BrokenDrone(t *testing.T) {
	ctx := t.Context()
	testDrone := availableDrone(t, "falcon-1")
	require.NoError(t, testDrone.MarkBroken())
	testJob := openJob(t)

	cmd, err := commands.NewReserveJobCommand(testDrone.ID(), testJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	droneRepo := new(MockDroneRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo)
	uow.On("DroneRepository").Return(droneRepo)
	droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReserveJobCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
	assert.Equal(t, job.Open, testJob.Status())
}

func TestReserveJobCommandHandler_Handle_ExcludedDrone(t *testing.T) {
	ctx := t.Context()
	testDrone := availableDrone(t, "falcon-1")
	testJob, err := job.NewHandoffJob(kernel.NewUUID(),
		mustCoordinate(1.0, 2.0), mustCoordinate(3.0, 4.0), testDrone.ID())
	require.NoError(t, err)

	cmd, err := commands.NewReserveJobCommand(testDrone.ID(), testJob.ID())
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

	handler := commands.NewReserveJobCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, job.Open, testJob.Status())
}
