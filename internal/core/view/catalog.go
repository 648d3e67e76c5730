// Package view computes filtered, sorted and paginated projections over the
// catalog and a user's bookings. Every function is pure: same inputs, same
// outputs, no I/O.
package view

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/sulabook/sulabook/internal/core/domain"
)

// CategoryAll selects every category.
const CategoryAll = "all"

// Catalog sort keys.
const (
	SortDefault   = "default"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
	SortName      = "name"
)

// CatalogQuery holds the mutable filter parameters for the service catalog.
type CatalogQuery struct {
	Search   string
	Category string
	SortBy   string
}

// FilterServices returns the services matching q, sorted per q.SortBy. The
// input slice is never mutated. Search matches title, description or location
// as a case-insensitive substring. All sorts are stable, and SortDefault
// preserves the filtered order as-is.
func FilterServices(services []domain.Service, q CatalogQuery) []domain.Service {
	result := make([]domain.Service, 0, len(services))

	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, svc := range services {
		if needle != "" && !matchesSearch(svc, needle) {
			continue
		}
		if q.Category != "" && q.Category != CategoryAll && svc.Category != q.Category {
			continue
		}
		result = append(result, svc)
	}

	switch q.SortBy {
	case SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price < result[j].Price })
	case SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Price > result[j].Price })
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool { return result[i].Rating > result[j].Rating })
	case SortName:
		c := collate.New(language.Und)
		sort.SliceStable(result, func(i, j int) bool {
			return c.CompareString(result[i].Title, result[j].Title) < 0
		})
	}

	return result
}

func matchesSearch(svc domain.Service, needle string) bool {
	return strings.Contains(strings.ToLower(svc.Title), needle) ||
		strings.Contains(strings.ToLower(svc.Description), needle) ||
		strings.Contains(strings.ToLower(svc.Location), needle)
}

// Categories returns the distinct categories of the unfiltered catalog, in
// first-seen order, with CategoryAll prepended. Used to build selection
// controls.
func Categories(services []domain.Service) []string {
	seen := make(map[string]struct{})
	out := []string{CategoryAll}
	for _, svc := range services {
		if _, ok := seen[svc.Category]; ok {
			continue
		}
		seen[svc.Category] = struct{}{}
		out = append(out, svc.Category)
	}
	return out
}
