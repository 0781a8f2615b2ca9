package product_controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/GameStore-Ecommerce/gamestore-backend/cache"
	"github.com/GameStore-Ecommerce/gamestore-backend/catalog"
	"github.com/GameStore-Ecommerce/gamestore-backend/config"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
	"github.com/GameStore-Ecommerce/gamestore-backend/repository"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// loadCatalog returns the session catalog, fetching from the store when the
// snapshot expired. The generation taken before the fetch keeps a slow stale
// fetch from overwriting a snapshot invalidated by an admin write in between.
func loadCatalog(c *gin.Context) ([]models.Product, error) {
	if products, ok := catalog_cache.Get(); ok {
		return products, nil
	}

	gen := catalog_cache.Generation()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	products, err := repository.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	catalog_cache.Set(products, gen)
	return products, nil
}

// parseQuerySpec seeds a QuerySpec from the navigation query parameters.
// Unknown enum values and malformed numbers are dropped, not rejected: the
// engine degrades to default results rather than erroring.
func parseQuerySpec(c *gin.Context) catalog.QuerySpec {
	spec := catalog.QuerySpec{
		Search: c.Query("search"),
		SortBy: catalog.SortKey(c.DefaultQuery("sortBy", string(catalog.SortName))),
	}

	if platform := models.Platform(c.Query("platform")); platform.IsValid() {
		spec.Platform = platform
	}
	if category := models.Category(c.Query("category")); category.IsValid() {
		spec.Category = category
	}

	if minStr := c.Query("minPrice"); minStr != "" {
		if min, err := strconv.ParseFloat(minStr, 64); err == nil {
			spec.MinPrice = &min
		}
	}
	if maxStr := c.Query("maxPrice"); maxStr != "" {
		if max, err := strconv.ParseFloat(maxStr, 64); err == nil {
			spec.MaxPrice = &max
		}
	}

	return spec
}
