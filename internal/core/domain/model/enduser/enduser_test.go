package enduser_test

import (
	"testing"

	"dronedelivery/internal/core/domain/model/enduser"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEndUser(t *testing.T) {
	t.Run("valid user", func(t *testing.T) {
		u, err := enduser.NewEndUser(kernel.NewUUID(), "alice")

		require.NoError(t, err)
		require.NoError(t, u.Validate())
		assert.Equal(t, "alice", u.Name())
		assert.NoError(t, u.ID().Validate())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := enduser.NewEndUser(kernel.NewUUID(), "")
		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var u enduser.EndUser
		require.Error(t, u.Validate())
	})
}
