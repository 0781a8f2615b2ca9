// Package catalog is the in-memory query engine behind the shop listing and
// home page. It operates on a product collection fetched once per session and
// never talks to the database itself: every function is a pure function of its
// inputs, safe to re-run on each filter change.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/GameStore-Ecommerce/gamestore-backend/models"
)

// SortKey selects the ordering of a catalog view. The values match the
// storefront's sortBy query parameter.
type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortRating    SortKey = "rating"
	SortNewest    SortKey = "newest"
)

// QuerySpec is the transient filter/sort state of one catalog view. Zero
// values mean "unset": empty platform/category match everything, nil price
// bounds leave that side of the range open.
type QuerySpec struct {
	Platform models.Platform
	Category models.Category
	MinPrice *float64
	MaxPrice *float64
	Search   string
	SortBy   SortKey
}

// titleCollator orders titles the way the storefront UI does (pt-BR locale,
// case-insensitive).
var titleCollator = collate.New(language.BrazilianPortuguese, collate.IgnoreCase)

// Search keeps products whose title or description contains term,
// case-insensitively. The shop page applies this once against the full
// catalog at load time, upstream of the interactive filters. Always returns
// a fresh slice: the sort at the end of Query runs in place, and the input
// may be the shared cached catalog.
func Search(products []models.Product, term string) []models.Product {
	if term == "" {
		out := make([]models.Product, len(products))
		copy(out, products)
		return out
	}
	needle := strings.ToLower(term)
	matched := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) ||
			strings.Contains(strings.ToLower(p.Description), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}

// Query runs the full pipeline: search, platform, category, price range, then
// a stable sort. The input slice is never mutated. A malformed spec (e.g. an
// inverted price range) degrades to an empty result, never an error.
func Query(products []models.Product, spec QuerySpec) []models.Product {
	filtered := Search(products, spec.Search)

	if spec.Platform != "" {
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Platform == spec.Platform
		})
	}

	if spec.Category != "" {
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Category == spec.Category
		})
	}

	if spec.MinPrice != nil {
		min := *spec.MinPrice
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Price >= min
		})
	}
	if spec.MaxPrice != nil {
		max := *spec.MaxPrice
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Price <= max
		})
	}

	sortProducts(filtered, spec.SortBy)
	return filtered
}

// keep returns a fresh slice so the caller's catalog stays untouched even
// when no predicate filtered anything out yet.
func keep(products []models.Product, pred func(models.Product) bool) []models.Product {
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// sortProducts sorts in place. Stability is load-bearing: products with equal
// keys must keep their original catalog order.
func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	default: // SortName and anything unknown
		sort.SliceStable(products, func(i, j int) bool {
			return titleCollator.CompareString(products[i].Title, products[j].Title) < 0
		})
	}
}
