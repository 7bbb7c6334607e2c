package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/eventosya/marketplace-api/internal/model"
)

func int64Ptr(v int64) *int64       { return &v }
func float64Ptr(v float64) *float64 { return &v }

func TestBuildSearchQueryNoFilters(t *testing.T) {
	query, args := buildSearchQuery(&model.SearchFilters{})

	assert.NotContains(t, query, "WHERE")
	assert.NotContains(t, query, "JOIN")
	assert.Contains(t, query, "ORDER BY s.created_at DESC")
	assert.Empty(t, args)
}

func TestBuildSearchQueryAllFilters(t *testing.T) {
	query, args := buildSearchQuery(&model.SearchFilters{
		Query:      "BBQ",
		Location:   "Santiago",
		CategoryID: int64Ptr(1),
		MinPrice:   float64Ptr(10000),
		MaxPrice:   float64Ptr(90000),
		SortBy:     model.SortPriceAsc,
	})

	assert.Contains(t, query, "JOIN providers p ON p.id = s.provider_id")
	assert.Contains(t, query, "s.title LIKE $1")
	assert.Contains(t, query, "p.location ILIKE $2")
	assert.Contains(t, query, "s.category_id = $3")
	assert.Contains(t, query, "s.price >= $4")
	assert.Contains(t, query, "s.price <= $5")
	assert.Contains(t, query, "ORDER BY s.price ASC")
	assert.Equal(t, []interface{}{"%BBQ%", "%Santiago%", int64(1), 10000.0, 90000.0}, args)
}

func TestBuildSearchQueryConjunction(t *testing.T) {
	query, _ := buildSearchQuery(&model.SearchFilters{
		Query:      "dj",
		CategoryID: int64Ptr(3),
	})

	assert.Contains(t, query, "s.title LIKE $1 AND s.category_id = $2")
	assert.NotContains(t, query, "JOIN")
}

func TestBuildSearchQuerySortFallback(t *testing.T) {
	for _, sortBy := range []string{"", "rating", "bogus"} {
		query, _ := buildSearchQuery(&model.SearchFilters{SortBy: sortBy})
		assert.Contains(t, query, "ORDER BY s.created_at DESC", "sortBy=%q", sortBy)
	}

	query, _ := buildSearchQuery(&model.SearchFilters{SortBy: model.SortPriceDesc})
	assert.Contains(t, query, "ORDER BY s.price DESC")
}
