package queries_test

import (
	"testing"

	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterlessQueries_ConstructorGuard(t *testing.T) {
	require.NoError(t, queries.NewGetOpenJobsQuery().Validate())
	require.NoError(t, queries.NewGetAllOrdersQuery().Validate())
	require.NoError(t, queries.NewGetAllJobsQuery().Validate())
	require.NoError(t, queries.NewGetAllDronesQuery().Validate())

	assert.ErrorIs(t, queries.GetOpenJobsQuery{}.Validate(),
		queries.ErrGetOpenJobsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetAllOrdersQuery{}.Validate(),
		queries.ErrGetAllOrdersQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetAllJobsQuery{}.Validate(),
		queries.ErrGetAllJobsQueryIsNotConstructed)
	assert.ErrorIs(t, queries.GetAllDronesQuery{}.Validate(),
		queries.ErrGetAllDronesQueryIsNotConstructed)
}

func TestNewGetCreatorOrdersQuery_RequiresCreator(t *testing.T) {
	_, err := queries.NewGetCreatorOrdersQuery(kernel.UUID{})
	require.Error(t, err)

	query, err := queries.NewGetCreatorOrdersQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetCreatorOrderQuery_RequiresBothIDs(t *testing.T) {
	_, err := queries.NewGetCreatorOrderQuery(kernel.UUID{}, kernel.NewUUID())
	require.Error(t, err)

	_, err = queries.NewGetCreatorOrderQuery(kernel.NewUUID(), kernel.UUID{})
	require.Error(t, err)

	query, err := queries.NewGetCreatorOrderQuery(kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetCurrentJobQuery_RequiresDrone(t *testing.T) {
	_, err := queries.NewGetCurrentJobQuery(kernel.UUID{})
	require.Error(t, err)

	query, err := queries.NewGetCurrentJobQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}
