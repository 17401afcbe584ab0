package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, p := Paginate(items, 1, 2)
	require.NotNil(t, p)
	assert.Equal(t, []int{1, 2}, page)
	assert.Equal(t, int64(3), p.TotalPages)
	assert.Equal(t, int64(5), p.TotalItems)
	assert.True(t, p.HasMore)

	page, p = Paginate(items, 3, 2)
	assert.Equal(t, []int{5}, page)
	assert.False(t, p.HasMore)

	page, p = Paginate(items, 10, 2)
	assert.Empty(t, page)
	assert.False(t, p.HasMore)
}

func TestPaginateDisabled(t *testing.T) {
	items := []string{"a", "b"}

	page, p := Paginate(items, 1, 0)

	assert.Nil(t, p)
	assert.Equal(t, items, page)
}

func TestPaginateDefaultsPage(t *testing.T) {
	items := []int{1, 2, 3}

	page, p := Paginate(items, 0, 2)

	assert.Equal(t, []int{1, 2}, page)
	assert.Equal(t, 1, p.Page)
}
