package utils

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseQueryDefaults(t *testing.T) {
	params := ParseQuery(url.Values{})

	assert.Equal(t, uint64(20), params.Limit)
	assert.Equal(t, uint64(0), params.Offset)
	assert.Equal(t, uint64(1), params.Page)
	assert.Equal(t, "created_at", params.SortBy)
	assert.Equal(t, "desc", params.SortOrder)
}

func TestParseQueryFiltersAndSearch(t *testing.T) {
	q := url.Values{}
	q.Set("filter[status]", "Disponible")
	q.Set("filter[company_id]", "acme")
	q.Set("search", "Dell")

	params := ParseQuery(q)

	assert.Equal(t, "Disponible", params.Filters["status"])
	assert.Equal(t, "acme", params.Filters["company_id"])
	assert.Equal(t, "Dell", params.Search)
}

func TestParseQueryPagination(t *testing.T) {
	q := url.Values{}
	q.Set("limit", "10")
	q.Set("page", "3")

	params := ParseQuery(q)

	assert.Equal(t, uint64(10), params.Limit)
	assert.Equal(t, uint64(3), params.Page)
	assert.Equal(t, uint64(20), params.Offset)
}

func TestParseQueryExplicitOffsetWins(t *testing.T) {
	q := url.Values{}
	q.Set("limit", "10")
	q.Set("offset", "40")
	q.Set("page", "1")

	params := ParseQuery(q)

	assert.Equal(t, uint64(40), params.Offset)
	assert.Equal(t, uint64(5), params.Page)
}

func TestParseQuerySortPrefix(t *testing.T) {
	q := url.Values{}
	q.Set("sort", "-inventory_code")
	params := ParseQuery(q)
	assert.Equal(t, "inventory_code", params.SortBy)
	assert.Equal(t, "desc", params.SortOrder)

	q.Set("sort", "brand")
	params = ParseQuery(q)
	assert.Equal(t, "brand", params.SortBy)
	assert.Equal(t, "asc", params.SortOrder)
}

func TestParseFilterFromQuery(t *testing.T) {
	q := url.Values{}
	q.Set("filter[status]", "Asignado")
	q.Set("limit", "5")
	q.Set("page", "2")

	filter := ParseFilterFromQuery(q)

	assert.Equal(t, "Asignado", filter.Filter["status"])
	assert.Equal(t, 5, filter.Limit)
	assert.Equal(t, 5, filter.Offset)
	assert.Equal(t, 2, filter.Page)
	assert.True(t, filter.WithPagination)
}
