package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GameStore-Ecommerce/gamestore-backend/catalog"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products with filters
// @Description Retrieve the game catalog filtered by platform, category, price range and free-text search, sorted by the requested key.
// @Tags Storefront - Products
// @Produce json
// @Param search query string false "Search term (title or description)"
// @Param platform query string false "Platform filter (PS4 | PS5 | Xbox One | Xbox Series X/S)"
// @Param category query string false "Category filter (Action, Adventure, RPG, ...)"
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param sortBy query string false "Sort key (name | price-low | price-high | rating | newest)" default(name)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	products, err := loadCatalog(c)
	if err != nil {
		log.Printf("[store.products] failed to load catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	spec := parseQuerySpec(c)
	result := catalog.Query(products, spec)

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		result,
		&models.Pagination{
			Page:       1,
			Limit:      len(result),
			Total:      len(result),
			TotalPages: 1,
		},
	))
}
