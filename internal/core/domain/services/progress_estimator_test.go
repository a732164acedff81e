package services_test

import (
	"testing"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/job"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/domain/services"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderWithJob(t *testing.T) (*order.Order, *job.Job) {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		mustCoordinate(t, 1.0, 2.0), mustCoordinate(t, 3.0, 4.0))
	require.NoError(t, err)

	j, err := job.NewJob(o.ID(), o.Origin(), o.Destination())
	require.NoError(t, err)
	require.NoError(t, o.AssignCurrentJob(j.ID()))
	return o, j
}

func TestProgressEstimator_Estimate(t *testing.T) {
	estimator := services.NewProgressEstimator()

	t.Run("no drone assigned reports the origin with ETA zero", func(t *testing.T) {
		o, j := newOrderWithJob(t)

		p, err := estimator.Estimate(o, j, nil)
		require.NoError(t, err)
		assert.True(t, p.Location.IsEqual(o.Origin()))
		assert.EqualValues(t, 0, p.ETASeconds)
	})

	t.Run("assigned drone without a heartbeat is invalid", func(t *testing.T) {
		o, j := newOrderWithJob(t)
		d, err := drone.NewDrone(kernel.NewUUID(), "silent")
		require.NoError(t, err)
		require.NoError(t, j.Reserve(d.ID()))

		_, err = estimator.Estimate(o, j, d)
		require.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("eta is distance over cruise speed", func(t *testing.T) {
		o, j := newOrderWithJob(t)
		d, err := drone.NewDrone(kernel.NewUUID(), "falcon-1")
		require.NoError(t, err)
		pos := mustCoordinate(t, 1.1, 2.1)
		require.NoError(t, d.Heartbeat(pos))
		require.NoError(t, j.Reserve(d.ID()))

		p, err := estimator.Estimate(o, j, d)
		require.NoError(t, err)
		assert.True(t, p.Location.IsEqual(pos))

		distance, err := pos.DistanceMeters(j.DropoffLocation())
		require.NoError(t, err)
		expected := int64(distance / 12.0)
		assert.InDelta(t, expected, p.ETASeconds, 1)
	})

	t.Run("drone at the dropoff has ETA zero", func(t *testing.T) {
		o, j := newOrderWithJob(t)
		d, err := drone.NewDrone(kernel.NewUUID(), "falcon-1")
		require.NoError(t, err)
		require.NoError(t, d.Heartbeat(j.DropoffLocation()))
		require.NoError(t, j.Reserve(d.ID()))

		p, err := estimator.Estimate(o, j, d)
		require.NoError(t, err)
		assert.EqualValues(t, 0, p.ETASeconds)
	})
}
