package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	catalog_cache "github.com/GameStore-Ecommerce/gamestore-backend/cache"
	"github.com/GameStore-Ecommerce/gamestore-backend/config"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
	"github.com/GameStore-Ecommerce/gamestore-backend/repository"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Creates a catalog product. The store assigns the ID (UUID v7) and timestamps.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if !req.Platform.IsValid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid platform: "+string(req.Platform)))
		return
	}
	if !req.Category.IsValid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category: "+string(req.Category)))
		return
	}

	product := models.Product{
		Title:         req.Title,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Platform:      req.Platform,
		Category:      req.Category,
		Images:        models.StringList(req.Images),
		Features:      models.StringList(req.Features),
		Rating:        req.Rating,
		ReviewCount:   req.ReviewCount,
		InStock:       req.InStock,
		StockQuantity: req.StockQuantity,
	}

	if req.ReleaseDate != "" {
		releaseDate, err := parseReleaseDate(req.ReleaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid release date: "+req.ReleaseDate))
			return
		}
		product.ReleaseDate = releaseDate
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	productID, err := repository.CreateProduct(ctx, &product)
	if err != nil {
		log.Printf("[cms.product] failed to create product: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	catalog_cache.Invalidate()

	log.Printf("[cms.product] created %q (%s)", product.Title, productID)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
