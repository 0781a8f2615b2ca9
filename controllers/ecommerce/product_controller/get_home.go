package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GameStore-Ecommerce/gamestore-backend/catalog"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
)

// GetStorefrontHome godoc
// @Summary Get home page product strips
// @Description Returns the three derived views of the catalog: featured (top rated), new arrivals (most recent 8) and latest releases (head 4 of the newest sequence).
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.StorefrontHomeResponse}
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /store/home [get]
func GetStorefrontHome(c *gin.Context) {
	products, err := loadCatalog(c)
	if err != nil {
		log.Printf("[store.home] failed to load catalog: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	home := models.StorefrontHomeResponse{
		Featured:       catalog.Featured(products),
		NewArrivals:    catalog.NewArrivals(products),
		LatestReleases: catalog.LatestReleases(products),
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Home products fetched successfully", home))
}
