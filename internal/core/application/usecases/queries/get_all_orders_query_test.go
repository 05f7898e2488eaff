package queries_test

import (
	"testing"

	"ordermanagement/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAllOrdersQuery_Valid(t *testing.T) {
	query := queries.NewGetAllOrdersQuery()
	assert.NoError(t, query.Validate())
}

func TestGetAllOrdersQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetAllOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}
