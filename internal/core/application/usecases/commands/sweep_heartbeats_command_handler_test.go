package commands_test

import (
	"testing"
	"time"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepHeartbeatsCommandHandler_Handle_SilentDroneIsBroken(t *testing.T) {
	ctx := t.Context()

	// Never sent a heartbeat, so its age is unbounded.
	silentDrone, err := drone.NewDrone(kernel.NewUUID(), "falcon-1")
	require.NoError(t, err)
	freshDrone := availableDrone(t, "falcon-2")

	droneRepo := new(MockDroneRepository)

	readUoW := new(MockUoW)
	readUoW.On("Begin", ctx).Return(nil).Once()
	readUoW.On("DroneRepository").Return(droneRepo)
	droneRepo.On("GetAllServiceable", ctx).
		Return([]*drone.Drone{silentDrone, freshDrone}, nil).Once()
	readUoW.On("Rollback", ctx).Return(nil).Once()

	brokenUoW := new(MockUoW)
	brokenUoW.On("Begin", ctx).Return(nil).Once()
	brokenUoW.On("DroneRepository").Return(droneRepo)
	droneRepo.On("Get", ctx, silentDrone.ID()).Return(silentDrone, nil).Once()
	droneRepo.On("Update", ctx, silentDrone).Return(nil).Once()
	brokenUoW.On("Commit", ctx).Return(nil).Once()
	brokenUoW.On("Rollback", ctx).Return(nil).Once()

	readFactory := new(MockUoWFactory)
	readFactory.On("Create").Return(readUoW).Once()
	brokenFactory := new(MockUoWFactory)
	brokenFactory.On("Create").Return(brokenUoW).Once()

	handler := commands.NewSweepHeartbeatsCommandHandler(readFactory,
		commands.NewMarkDroneBrokenCommandHandler(brokenFactory))

	cmd, err := commands.NewSweepHeartbeatsCommand(5 * time.Minute)
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, drone.Broken, silentDrone.Status())
	assert.Equal(t, drone.Active, freshDrone.Status())
	droneRepo.AssertExpectations(t)
}

func TestSweepHeartbeatsCommandHandler_Handle_FreshDronesUntouched(t *testing.T) {
	ctx := t.Context()
	freshDrone := availableDrone(t, "falcon-1")

	droneRepo := new(MockDroneRepository)

	readUoW := new(MockUoW)
	readUoW.On("Begin", ctx).Return(nil).Once()
	readUoW.On("DroneRepository").Return(droneRepo)
	droneRepo.On("GetAllServiceable", ctx).
		Return([]*drone.Drone{freshDrone}, nil).Once()
	readUoW.On("Rollback", ctx).Return(nil).Once()

	readFactory := new(MockUoWFactory)
	readFactory.On("Create").Return(readUoW).Once()
	brokenFactory := new(MockUoWFactory)

	handler := commands.NewSweepHeartbeatsCommandHandler(readFactory,
		commands.NewMarkDroneBrokenCommandHandler(brokenFactory))

	cmd, err := commands.NewSweepHeartbeatsCommand(5 * time.Minute)
	require.NoError(t, err)
	require.NoError(t, handler.Handle(ctx, cmd))

	assert.Equal(t, drone.Active, freshDrone.Status())
	brokenFactory.AssertNotCalled(t, "Create")
}

func TestSweepHeartbeatsCommand_RejectsNonPositiveTimeout(t *testing.T) {
	_, err := commands.NewSweepHeartbeatsCommand(0)
	require.ErrorIs(t, err, commands.ErrTimeoutIsInvalid)
}
