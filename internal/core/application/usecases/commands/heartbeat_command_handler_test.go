package commands_test

import (
	"testing"

	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHeartbeatCommandHandler_Handle_RecordsPosition(t *testing.T) {
	ctx := t.Context()

	testDrone, err := drone.NewDrone(kernel.NewUUID(), "falcon-1")
	require.NoError(t, err)
	position := mustCoordinate(5.0, 6.0)

	droneRepo := new(MockDroneRepository)
	droneRepo.On("Get", ctx, testDrone.ID()).Return(testDrone, nil).Once()
	droneRepo.On("Update", ctx, testDrone).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DroneRepository").Return(droneRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDroneUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewHeartbeatCommandHandler(factory)
	cmd, err := commands.NewHeartbeatCommand(testDrone.ID(), position)
	require.NoError(t, err)

	require.NoError(t, handler.Handle(ctx, cmd))

	require.NotNil(t, testDrone.LastCoordinate())
	assert.True(t, testDrone.LastCoordinate().IsEqual(position))
	assert.NotNil(t, testDrone.LastHeartbeatAt())
	uow.AssertExpectations(t)
	droneRepo.AssertExpectations(t)
}

func TestHeartbeatCommandHandler_Handle_UnknownDrone(t *testing.T) {
	ctx := t.Context()
	droneID := kernel.NewUUID()

	droneRepo := new(MockDroneRepository)
	droneRepo.On("Get", ctx, droneID).
		Return(nil, errs.NewNotFoundError("drone", droneID.String())).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("DroneRepository").Return(droneRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDroneUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewHeartbeatCommandHandler(factory)
	cmd, err := commands.NewHeartbeatCommand(droneID, mustCoordinate(5.0, 6.0))
	require.NoError(t, err)

	err = handler.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}