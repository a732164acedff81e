package order_test

import (
	"testing"

	"dronedelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	valid := []order.Status{
		order.Submitted,
		order.Canceled,
		order.InDelivery,
		order.HandoffRequested,
		order.Delivered,
		order.Failed,
	}
	for _, s := range valid {
		assert.NoError(t, s.Validate(), s.String())
	}

	assert.Error(t, order.Unknown.Validate())
	assert.Error(t, order.Status(42).Validate())
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, order.Canceled.IsTerminal())
	assert.True(t, order.Delivered.IsTerminal())
	assert.True(t, order.Failed.IsTerminal())

	assert.False(t, order.Submitted.IsTerminal())
	assert.False(t, order.InDelivery.IsTerminal())
	assert.False(t, order.HandoffRequested.IsTerminal())
}

func TestStatus_Cancel(t *testing.T) {
	t.Run("submitted order can be withdrawn", func(t *testing.T) {
		next, err := order.Submitted.Cancel()
		require.NoError(t, err)
		assert.Equal(t, order.Canceled, next)
	})

	t.Run("order in delivery can be withdrawn", func(t *testing.T) {
		next, err := order.InDelivery.Cancel()
		require.NoError(t, err)
		assert.Equal(t, order.Canceled, next)
	})

	t.Run("finished order cannot be withdrawn", func(t *testing.T) {
		_, err := order.Delivered.Cancel()
		require.Error(t, err)

		_, err = order.Failed.Cancel()
		require.Error(t, err)
	})
}

func TestStatus_StartDelivery(t *testing.T) {
	t.Run("submitted order enters delivery", func(t *testing.T) {
		next, err := order.Submitted.StartDelivery()
		require.NoError(t, err)
		assert.Equal(t, order.InDelivery, next)
	})

	t.Run("handoff order re-enters delivery", func(t *testing.T) {
		next, err := order.HandoffRequested.StartDelivery()
		require.NoError(t, err)
		assert.Equal(t, order.InDelivery, next)
	})

	t.Run("terminal orders are rejected", func(t *testing.T) {
		for _, s := range []order.Status{order.Canceled, order.Delivered, order.Failed} {
			_, err := s.StartDelivery()
			require.Error(t, err, s.String())
		}
	})
}

func TestStatus_Deliver(t *testing.T) {
	next, err := order.InDelivery.Deliver()
	require.NoError(t, err)
	assert.Equal(t, order.Delivered, next)

	_, err = order.Submitted.Deliver()
	require.Error(t, err)
}

func TestStatus_Fail(t *testing.T) {
	next, err := order.InDelivery.Fail()
	require.NoError(t, err)
	assert.Equal(t, order.Failed, next)

	_, err = order.HandoffRequested.Fail()
	require.Error(t, err)
}

func TestStatus_RequestHandoff(t *testing.T) {
	next, err := order.InDelivery.RequestHandoff()
	require.NoError(t, err)
	assert.Equal(t, order.HandoffRequested, next)

	_, err = order.Submitted.RequestHandoff()
	require.Error(t, err)
}
