package catalog

import (
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
)

const (
	featuredCount       = 4
	newArrivalsCount    = 8
	latestReleasesCount = 4
)

// Featured returns the home page highlight strip: the four best-rated games,
// ties broken by catalog order.
func Featured(products []models.Product) []models.Product {
	ranked := sortedCopy(products, SortRating)
	return head(ranked, featuredCount)
}

// NewArrivals returns the eight most recently added games for the home page
// "new arrivals" section.
func NewArrivals(products []models.Product) []models.Product {
	newest := sortedCopy(products, SortNewest)
	return head(newest, newArrivalsCount)
}

// LatestReleases is the secondary four-item strip: the head of the same
// newest-first sequence, not a separately curated set.
func LatestReleases(products []models.Product) []models.Product {
	return head(NewArrivals(products), latestReleasesCount)
}

func sortedCopy(products []models.Product, key SortKey) []models.Product {
	out := make([]models.Product, len(products))
	copy(out, products)
	sortProducts(out, key)
	return out
}

func head(products []models.Product, n int) []models.Product {
	if len(products) > n {
		return products[:n]
	}
	return products
}
