package queries_test

import (
	"testing"

	"ayoya/internal/core/application/usecases/queries"
	"ayoya/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewListOrdersQuery(queries.OrderFilter{Status: "pending"}, 2, 25)
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, 2, query.Page())
	assert.Equal(t, 25, query.PageSize())
	assert.Equal(t, 25, query.Offset())
	assert.Equal(t, "pending", query.Filter().Status)
}

func TestNewListOrdersQuery_Defaults(t *testing.T) {
	query, err := queries.NewListOrdersQuery(queries.OrderFilter{}, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, query.Page())
	assert.Equal(t, 10, query.PageSize())
	assert.Equal(t, 0, query.Offset())
}

func TestNewListOrdersQuery_CapsPageSize(t *testing.T) {
	query, err := queries.NewListOrdersQuery(queries.OrderFilter{}, 1, 5000)
	require.NoError(t, err)

	assert.Equal(t, 100, query.PageSize())
}

func TestNewListOrdersQuery_UnknownStatus(t *testing.T) {
	_, err := queries.NewListOrdersQuery(queries.OrderFilter{Status: "shipped"}, 1, 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewListOrdersQuery_TrimsFilter(t *testing.T) {
	query, err := queries.NewListOrdersQuery(queries.OrderFilter{
		City:   "  Cotonou ",
		Search: " AYO ",
	}, 1, 10)
	require.NoError(t, err)

	assert.Equal(t, "Cotonou", query.Filter().City)
	assert.Equal(t, "AYO", query.Filter().Search)
}

func TestListOrdersQuery_NotConstructed(t *testing.T) {
	var query queries.ListOrdersQuery
	assert.ErrorIs(t, query.Validate(), queries.ErrListOrdersQueryIsNotConstructed)
}
