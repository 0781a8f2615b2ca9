package catalog

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GameStore-Ecommerce/gamestore-backend/models"
)

func testProduct(title string, price float64, platform models.Platform, category models.Category) models.Product {
	return models.Product{
		ID:       uuid.Must(uuid.NewV7()),
		Title:    title,
		Price:    price,
		Platform: platform,
		Category: category,
	}
}

func testCatalog() []models.Product {
	return []models.Product{
		testProduct("Turbo Racing Legends", 100, models.PlatformPS5, models.CategoryRacing),
		testProduct("Dungeon of Echoes", 200, models.PlatformPS4, models.CategoryRPG),
		testProduct("Street Racing Underground", 300, models.PlatformXboxSeries, models.CategoryRacing),
		testProduct("Galaxy Strike", 400, models.PlatformPS5, models.CategoryShooter),
		testProduct("Penalty Kings", 500, models.PlatformXboxOne, models.CategorySports),
	}
}

func floatPtr(v float64) *float64 { return &v }

func titles(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Title
	}
	return out
}

func TestQueryPriceRange(t *testing.T) {
	products := testCatalog()

	result := Query(products, QuerySpec{
		MinPrice: floatPtr(100),
		MaxPrice: floatPtr(350),
	})

	// Bounds are inclusive on both ends
	require.Len(t, result, 3)
	for _, p := range result {
		assert.GreaterOrEqual(t, p.Price, 100.0)
		assert.LessOrEqual(t, p.Price, 350.0)
	}
}

func TestQueryInvertedPriceRangeIsEmpty(t *testing.T) {
	products := testCatalog()

	result := Query(products, QuerySpec{
		MinPrice: floatPtr(400),
		MaxPrice: floatPtr(100),
	})

	assert.Empty(t, result)
}

func TestQuerySearchMatchesTitleAndDescription(t *testing.T) {
	products := testCatalog()
	products[1].Description = "A racing-themed dungeon crawl"

	result := Query(products, QuerySpec{Search: "RACING"})

	assert.ElementsMatch(t,
		[]string{"Turbo Racing Legends", "Street Racing Underground", "Dungeon of Echoes"},
		titles(result))
}

func TestQueryCombinesFilters(t *testing.T) {
	products := testCatalog()

	result := Query(products, QuerySpec{
		Platform: models.PlatformPS5,
		Category: models.CategoryRacing,
	})

	require.Len(t, result, 1)
	assert.Equal(t, "Turbo Racing Legends", result[0].Title)
}

func TestQueryDefaultSortIsTitle(t *testing.T) {
	products := testCatalog()

	result := Query(products, QuerySpec{})

	assert.Equal(t, []string{
		"Dungeon of Echoes",
		"Galaxy Strike",
		"Penalty Kings",
		"Street Racing Underground",
		"Turbo Racing Legends",
	}, titles(result))
}

func TestQuerySortByPrice(t *testing.T) {
	products := testCatalog()

	low := Query(products, QuerySpec{SortBy: SortPriceLow})
	require.Len(t, low, 5)
	for i := 1; i < len(low); i++ {
		assert.LessOrEqual(t, low[i-1].Price, low[i].Price)
	}

	high := Query(products, QuerySpec{SortBy: SortPriceHigh})
	require.Len(t, high, 5)
	for i := 1; i < len(high); i++ {
		assert.GreaterOrEqual(t, high[i-1].Price, high[i].Price)
	}
}

func TestQuerySortStabilityOnEqualKeys(t *testing.T) {
	// Same price everywhere: sorting by price must keep catalog order
	products := []models.Product{
		testProduct("Zeta", 100, models.PlatformPS5, models.CategoryAction),
		testProduct("Alpha", 100, models.PlatformPS5, models.CategoryAction),
		testProduct("Mid", 100, models.PlatformPS5, models.CategoryAction),
	}

	result := Query(products, QuerySpec{SortBy: SortPriceLow})

	assert.Equal(t, []string{"Zeta", "Alpha", "Mid"}, titles(result))
}

func TestQueryIsIdempotent(t *testing.T) {
	products := testCatalog()
	spec := QuerySpec{
		Platform: models.PlatformPS5,
		SortBy:   SortPriceHigh,
	}

	first := Query(products, spec)
	second := Query(products, spec)

	assert.Equal(t, first, second)
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	products := testCatalog()
	original := titles(products)

	// No search term and no filters: the sort must still run on a copy,
	// never on the caller's (shared, cached) slice.
	result := Query(products, QuerySpec{SortBy: SortPriceHigh})

	assert.Equal(t, original, titles(products))

	// The result must not share backing storage with the input either
	result[0].Title = "changed"
	assert.Equal(t, original, titles(products))
}

func TestSearchEmptyTermReturnsCopy(t *testing.T) {
	products := testCatalog()

	result := Search(products, "")

	require.Len(t, result, len(products))
	result[0].Title = "changed"
	assert.NotEqual(t, "changed", products[0].Title)
}

func TestQuerySortNewest(t *testing.T) {
	now := time.Now().UTC()
	products := testCatalog()
	for i := range products {
		products[i].CreatedAt = now.Add(time.Duration(i) * time.Hour)
	}

	result := Query(products, QuerySpec{SortBy: SortNewest})

	require.Len(t, result, 5)
	assert.Equal(t, "Penalty Kings", result[0].Title)
	assert.Equal(t, "Turbo Racing Legends", result[4].Title)
}

func TestSearchEmptyTermReturnsAll(t *testing.T) {
	products := testCatalog()

	result := Search(products, "")

	assert.Len(t, result, len(products))
}
