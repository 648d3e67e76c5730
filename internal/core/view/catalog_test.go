package view

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sulabook/sulabook/internal/core/domain"
)

var testCatalog = []domain.Service{
	{ID: "s1", Title: "Sunset Yoga", Description: "Evening flow", Category: "wellness", Location: "Beach", Price: 25, Rating: 4.8},
	{ID: "s2", Title: "City Tour", Description: "Walk the old town", Category: "tours", Location: "Downtown", Price: 40, Rating: 4.5},
	{ID: "s3", Title: "Spa Day", Description: "Hot stone massage and yoga stretch", Category: "wellness", Location: "Hotel", Price: 120, Rating: 4.9},
	{ID: "s4", Title: "Cooking Class", Description: "Local cuisine", Category: "food", Location: "Yoga Street 5", Price: 60, Rating: 4.2},
	{ID: "s5", Title: "Wine Tasting", Description: "Five local wines", Category: "food", Price: 55, Rating: 4.7},
}

func idsOf(services []domain.Service) []string {
	out := make([]string, len(services))
	for i, s := range services {
		out[i] = s.ID
	}
	return out
}

func TestFilterServices(t *testing.T) {
	t.Run("search matches title, description and location case-insensitively", func(t *testing.T) {
		got := FilterServices(testCatalog, CatalogQuery{Search: "YOGA"})
		assert.Equal(t, []string{"s1", "s3", "s4"}, idsOf(got))
	})

	t.Run("search combined with category narrows further", func(t *testing.T) {
		got := FilterServices(testCatalog, CatalogQuery{Search: "yoga", Category: "wellness"})
		assert.Equal(t, []string{"s1", "s3"}, idsOf(got))
	})

	t.Run("blank search matches everything", func(t *testing.T) {
		got := FilterServices(testCatalog, CatalogQuery{Search: "   "})
		assert.Len(t, got, len(testCatalog))
	})

	t.Run("category all is a pass-through", func(t *testing.T) {
		got := FilterServices(testCatalog, CatalogQuery{Category: CategoryAll})
		assert.Len(t, got, len(testCatalog))
	})

	t.Run("price-asc yields a non-decreasing price sequence", func(t *testing.T) {
		got := FilterServices(testCatalog, CatalogQuery{SortBy: SortPriceAsc})
		require.Len(t, got, len(testCatalog))
		assert.True(t, sort.SliceIsSorted(got, func(i, j int) bool { return got[i].Price < got[j].Price }))
	})

	t.Run("price-desc reverses the order", func(t *testing.T) {
		got := FilterServices(testCatalog, CatalogQuery{SortBy: SortPriceDesc})
		assert.Equal(t, "s3", got[0].ID)
		assert.Equal(t, "s1", got[len(got)-1].ID)
	})

	t.Run("rating sorts descending", func(t *testing.T) {
		got := FilterServices(testCatalog, CatalogQuery{SortBy: SortRating})
		assert.Equal(t, []string{"s3", "s1", "s5", "s2", "s4"}, idsOf(got))
	})

	t.Run("name sorts by title", func(t *testing.T) {
		got := FilterServices(testCatalog, CatalogQuery{SortBy: SortName})
		assert.Equal(t, []string{"s2", "s4", "s3", "s1", "s5"}, idsOf(got))
	})

	t.Run("default preserves catalog order", func(t *testing.T) {
		got := FilterServices(testCatalog, CatalogQuery{SortBy: SortDefault})
		assert.Equal(t, idsOf(testCatalog), idsOf(got))
	})

	t.Run("input slice is not mutated", func(t *testing.T) {
		before := idsOf(testCatalog)
		_ = FilterServices(testCatalog, CatalogQuery{SortBy: SortPriceDesc})
		assert.Equal(t, before, idsOf(testCatalog))
	})
}

func TestCategories(t *testing.T) {
	got := Categories(testCatalog)
	assert.Equal(t, []string{CategoryAll, "wellness", "tours", "food"}, got)

	t.Run("derived from the unfiltered catalog", func(t *testing.T) {
		assert.Equal(t, []string{CategoryAll}, Categories(nil))
	})
}
