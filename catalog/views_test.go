package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GameStore-Ecommerce/gamestore-backend/models"
)

func TestFeaturedPicksTopRated(t *testing.T) {
	ratings := []float64{4.8, 3.2, 5.0, 4.8, 2.1, 4.9}
	products := make([]models.Product, len(ratings))
	for i, r := range ratings {
		products[i] = testProduct("Game", 100, models.PlatformPS5, models.CategoryAction)
		products[i].Rating = r
	}

	featured := Featured(products)

	require.Len(t, featured, 4)
	got := make([]float64, len(featured))
	for i, p := range featured {
		got[i] = p.Rating
	}
	// Ties (the two 4.8s) keep their catalog order
	assert.Equal(t, []float64{5.0, 4.9, 4.8, 4.8}, got)
	assert.Equal(t, products[0].ID, featured[2].ID)
	assert.Equal(t, products[3].ID, featured[3].ID)
}

func TestFeaturedWithSmallCatalog(t *testing.T) {
	products := testCatalog()[:2]

	featured := Featured(products)

	assert.Len(t, featured, 2)
}

func TestNewArrivalsNewestFirst(t *testing.T) {
	now := time.Now().UTC()
	products := make([]models.Product, 10)
	for i := range products {
		products[i] = testProduct("Game", 100, models.PlatformPS5, models.CategoryAction)
		products[i].CreatedAt = now.Add(time.Duration(i) * time.Minute)
	}

	arrivals := NewArrivals(products)

	require.Len(t, arrivals, 8)
	assert.Equal(t, products[9].ID, arrivals[0].ID)
	for i := 1; i < len(arrivals); i++ {
		assert.False(t, arrivals[i].CreatedAt.After(arrivals[i-1].CreatedAt))
	}
}

func TestLatestReleasesIsHeadOfNewArrivals(t *testing.T) {
	now := time.Now().UTC()
	products := make([]models.Product, 10)
	for i := range products {
		products[i] = testProduct("Game", 100, models.PlatformPS5, models.CategoryAction)
		products[i].CreatedAt = now.Add(time.Duration(i) * time.Minute)
	}

	arrivals := NewArrivals(products)
	latest := LatestReleases(products)

	require.Len(t, latest, 4)
	for i, p := range latest {
		assert.Equal(t, arrivals[i].ID, p.ID)
	}
}

func TestViewsDoNotMutateCatalog(t *testing.T) {
	products := testCatalog()
	products[0].Rating = 1.0
	products[4].Rating = 5.0
	first := products[0].ID

	Featured(products)
	NewArrivals(products)
	LatestReleases(products)

	assert.Equal(t, first, products[0].ID)
}
