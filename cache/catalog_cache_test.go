package catalog_cache

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GameStore-Ecommerce/gamestore-backend/models"
)

func snapshot(titles ...string) []models.Product {
	products := make([]models.Product, len(titles))
	for i, title := range titles {
		products[i] = models.Product{ID: uuid.Must(uuid.NewV7()), Title: title}
	}
	return products
}

func reset() {
	mu.Lock()
	defer mu.Unlock()
	cache = nil
	gen = 0
}

func TestSetThenGet(t *testing.T) {
	reset()

	Set(snapshot("Galaxy Strike"), Generation())

	products, ok := Get()
	require.True(t, ok)
	require.Len(t, products, 1)
	assert.Equal(t, "Galaxy Strike", products[0].Title)
}

func TestGetMissesWhenEmpty(t *testing.T) {
	reset()

	products, ok := Get()

	assert.False(t, ok)
	assert.Nil(t, products)
}

func TestInvalidateDropsSnapshot(t *testing.T) {
	reset()

	Set(snapshot("Galaxy Strike"), Generation())
	Invalidate()

	_, ok := Get()
	assert.False(t, ok)
}

func TestStaleSetIsRejectedAfterInvalidate(t *testing.T) {
	reset()

	// A slow reader takes the generation, then an admin write invalidates
	// while its fetch is still in flight.
	stale := Generation()
	Invalidate()

	Set(snapshot("Old Catalog"), stale)

	// The stale snapshot must not become visible
	_, ok := Get()
	assert.False(t, ok)

	// A fetch started after the invalidation wins as usual
	Set(snapshot("Fresh Catalog"), Generation())
	products, ok := Get()
	require.True(t, ok)
	assert.Equal(t, "Fresh Catalog", products[0].Title)
}

func TestStaleSetDoesNotOverwriteNewerSnapshot(t *testing.T) {
	reset()

	stale := Generation()
	Invalidate()
	Set(snapshot("Fresh Catalog"), Generation())

	Set(snapshot("Old Catalog"), stale)

	products, ok := Get()
	require.True(t, ok)
	assert.Equal(t, "Fresh Catalog", products[0].Title)
}
