package drone_test

import (
	"testing"
	"time"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCoordinate(t *testing.T, lat, lng float64) kernel.Coordinate {
	t.Helper()
	c, err := kernel.NewCoordinate(lat, lng)
	require.NoError(t, err)
	return c
}

func newTestDrone(t *testing.T) *drone.Drone {
	t.Helper()
	d, err := drone.NewDrone(kernel.NewUUID(), "falcon-1")
	require.NoError(t, err)
	return d
}

func TestNewDrone(t *testing.T) {
	t.Run("starts active with no location", func(t *testing.T) {
		d, err := drone.NewDrone(kernel.NewUUID(), "falcon-1")

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, "falcon-1", d.Name())
		assert.Equal(t, drone.Active, d.Status())
		assert.Nil(t, d.LastCoordinate())
		assert.Nil(t, d.LastHeartbeatAt())
		assert.Nil(t, d.CurrentJobID())
		assert.EqualValues(t, 1, d.Version())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := drone.NewDrone(kernel.NewUUID(), "")
		require.Error(t, err)
	})
}

func TestDrone_Heartbeat(t *testing.T) {
	d := newTestDrone(t)
	pos := mustCoordinate(t, 1.1, 2.1)

	require.NoError(t, d.Heartbeat(pos))
	require.NotNil(t, d.LastCoordinate())
	assert.True(t, d.LastCoordinate().IsEqual(pos))
	require.NotNil(t, d.LastHeartbeatAt())
}

func TestDrone_IsAvailable(t *testing.T) {
	t.Run("needs a known location", func(t *testing.T) {
		d := newTestDrone(t)
		assert.False(t, d.IsAvailable())

		require.NoError(t, d.Heartbeat(mustCoordinate(t, 1, 2)))
		assert.True(t, d.IsAvailable())
	})

	t.Run("busy drone is not available", func(t *testing.T) {
		d := newTestDrone(t)
		require.NoError(t, d.Heartbeat(mustCoordinate(t, 1, 2)))
		require.NoError(t, d.AssignJob(kernel.NewUUID()))
		assert.False(t, d.IsAvailable())
	})

	t.Run("broken drone is not available, fixed drone is", func(t *testing.T) {
		d := newTestDrone(t)
		require.NoError(t, d.Heartbeat(mustCoordinate(t, 1, 2)))

		require.NoError(t, d.MarkBroken())
		assert.False(t, d.IsAvailable())

		require.NoError(t, d.MarkFixed())
		assert.True(t, d.IsAvailable())
	})
}

func TestDrone_IsHeartbeatStaleAt(t *testing.T) {
	now := time.Now().UTC()
	timeout := 5 * time.Minute

	t.Run("never heartbeated is stale", func(t *testing.T) {
		d := newTestDrone(t)
		assert.True(t, d.IsHeartbeatStaleAt(now, timeout))
	})

	t.Run("recent heartbeat is fresh", func(t *testing.T) {
		d := newTestDrone(t)
		require.NoError(t, d.Heartbeat(mustCoordinate(t, 1, 2)))
		assert.False(t, d.IsHeartbeatStaleAt(time.Now().UTC(), timeout))
	})

	t.Run("old heartbeat is stale", func(t *testing.T) {
		d := newTestDrone(t)
		require.NoError(t, d.Heartbeat(mustCoordinate(t, 1, 2)))
		assert.True(t, d.IsHeartbeatStaleAt(now.Add(timeout+time.Second), timeout))
	})
}

func TestDrone_AssignJob(t *testing.T) {
	t.Run("assigns when idle", func(t *testing.T) {
		d := newTestDrone(t)
		jobID := kernel.NewUUID()

		require.NoError(t, d.AssignJob(jobID))
		require.NotNil(t, d.CurrentJobID())
		assert.True(t, d.CurrentJobID().IsEqual(jobID))
	})

	t.Run("same job again is a no-op", func(t *testing.T) {
		d := newTestDrone(t)
		jobID := kernel.NewUUID()
		require.NoError(t, d.AssignJob(jobID))
		require.NoError(t, d.AssignJob(jobID))
	})

	t.Run("second job is rejected", func(t *testing.T) {
		d := newTestDrone(t)
		require.NoError(t, d.AssignJob(kernel.NewUUID()))

		err := d.AssignJob(kernel.NewUUID())
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestDrone_ClearCurrentJob(t *testing.T) {
	d := newTestDrone(t)
	require.NoError(t, d.AssignJob(kernel.NewUUID()))

	require.NoError(t, d.ClearCurrentJob())
	assert.Nil(t, d.CurrentJobID())
}

func TestDrone_StatusCycle(t *testing.T) {
	d := newTestDrone(t)

	require.NoError(t, d.MarkBroken())
	assert.Equal(t, drone.Broken, d.Status())
	assert.False(t, d.Status().IsServiceable())

	require.NoError(t, d.MarkFixed())
	assert.Equal(t, drone.Fixed, d.Status())
	assert.True(t, d.Status().IsServiceable())
}

func TestStatusFromString(t *testing.T) {
	s, err := drone.StatusFromString("broken")
	require.NoError(t, err)
	assert.Equal(t, drone.Broken, s)

	s, err = drone.StatusFromString("ACTIVE")
	require.NoError(t, err)
	assert.Equal(t, drone.Active, s)

	_, err = drone.StatusFromString("exploded")
	require.Error(t, err)
}
