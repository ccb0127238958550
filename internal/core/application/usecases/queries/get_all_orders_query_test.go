package queries_test

import (
	"testing"

	"printflow/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllOrdersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetAllOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAllOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}

func TestNewGetOrderStatsQuery_Valid(t *testing.T) {
	query := queries.NewGetOrderStatsQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetOrderStatsQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderStatsQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderStatsQueryIsNotConstructed)
}
