package services_test

import (
	"testing"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/job"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustCoordinate(t *testing.T, lat, lng float64) kernel.Coordinate {
	t.Helper()
	c, err := kernel.NewCoordinate(lat, lng)
	require.NoError(t, err)
	return c
}

func newOpenJob(t *testing.T, pickupLat, pickupLng float64) *job.Job {
	t.Helper()
	j, err := job.NewJob(kernel.NewUUID(),
		mustCoordinate(t, pickupLat, pickupLng), mustCoordinate(t, 10, 10))
	require.NoError(t, err)
	return j
}

func newDroneAt(t *testing.T, name string, lat, lng float64) *drone.Drone {
	t.Helper()
	d, err := drone.NewDrone(kernel.NewUUID(), name)
	require.NoError(t, err)
	require.NoError(t, d.Heartbeat(mustCoordinate(t, lat, lng)))
	return d
}

func TestJobDispatcher_SelectDrone(t *testing.T) {
	dispatcher := services.NewJobDispatcher()

	t.Run("picks the nearest drone", func(t *testing.T) {
		j := newOpenJob(t, 0, 0)
		near := newDroneAt(t, "near", 0.1, 0.1)
		far := newDroneAt(t, "far", 5, 5)

		selected, err := dispatcher.SelectDrone(j, []*drone.Drone{far, near})
		require.NoError(t, err)
		assert.True(t, selected.ID().IsEqual(near.ID()))
	})

	t.Run("first candidate wins a distance tie", func(t *testing.T) {
		j := newOpenJob(t, 0, 0)
		first := newDroneAt(t, "first", 1, 0)
		second := newDroneAt(t, "second", 1, 0)

		selected, err := dispatcher.SelectDrone(j, []*drone.Drone{first, second})
		require.NoError(t, err)
		assert.True(t, selected.ID().IsEqual(first.ID()))
	})

	t.Run("skips the excluded drone even when nearest", func(t *testing.T) {
		excluded := newDroneAt(t, "excluded", 0.1, 0.1)
		j, err := job.NewHandoffJob(kernel.NewUUID(),
			mustCoordinate(t, 0, 0), mustCoordinate(t, 10, 10), excluded.ID())
		require.NoError(t, err)
		far := newDroneAt(t, "far", 5, 5)

		selected, err := dispatcher.SelectDrone(j, []*drone.Drone{excluded, far})
		require.NoError(t, err)
		assert.True(t, selected.ID().IsEqual(far.ID()))
	})

	t.Run("skips drones without a location or with a job", func(t *testing.T) {
		j := newOpenJob(t, 0, 0)

		silent, err := drone.NewDrone(kernel.NewUUID(), "silent")
		require.NoError(t, err)

		busy := newDroneAt(t, "busy", 0.1, 0.1)
		require.NoError(t, busy.AssignJob(kernel.NewUUID()))

		_, err = dispatcher.SelectDrone(j, []*drone.Drone{silent, busy})
		require.ErrorIs(t, err, services.ErrDroneNotFound)
	})

	t.Run("no candidates", func(t *testing.T) {
		j := newOpenJob(t, 0, 0)
		_, err := dispatcher.SelectDrone(j, nil)
		require.ErrorIs(t, err, services.ErrDroneNotFound)
	})
}
