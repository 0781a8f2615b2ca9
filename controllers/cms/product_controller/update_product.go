package product_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	catalog_cache "github.com/GameStore-Ecommerce/gamestore-backend/cache"
	"github.com/GameStore-Ecommerce/gamestore-backend/config"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
	"github.com/GameStore-Ecommerce/gamestore-backend/repository"
)

// UpdateProduct godoc
// @Summary Update an existing product
// @Description Applies a partial update. Only the fields present in the body are changed.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID (UUID)"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var input models.UpdateProductRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Build update map from non-nil fields only
	updates := make(map[string]interface{})

	if input.Title != nil {
		updates["title"] = *input.Title
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.OriginalPrice != nil {
		updates["original_price"] = *input.OriginalPrice
	}
	if input.Platform != nil {
		if !input.Platform.IsValid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid platform: "+string(*input.Platform)))
			return
		}
		updates["platform"] = *input.Platform
	}
	if input.Category != nil {
		if !input.Category.IsValid() {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category: "+string(*input.Category)))
			return
		}
		updates["category"] = *input.Category
	}
	if input.Images != nil {
		updates["images"] = models.StringList(*input.Images)
	}
	if input.Features != nil {
		updates["features"] = models.StringList(*input.Features)
	}
	if input.Rating != nil {
		updates["rating"] = *input.Rating
	}
	if input.ReviewCount != nil {
		updates["review_count"] = *input.ReviewCount
	}
	if input.InStock != nil {
		updates["in_stock"] = *input.InStock
	}
	if input.StockQuantity != nil {
		updates["stock_quantity"] = *input.StockQuantity
	}
	if input.ReleaseDate != nil {
		releaseDate, err := parseReleaseDate(*input.ReleaseDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid release date: "+*input.ReleaseDate))
			return
		}
		updates["release_date"] = releaseDate
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := repository.UpdateProduct(ctx, productID, updates); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		log.Printf("[cms.product] failed to update product %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}

	catalog_cache.Invalidate()

	product, err := repository.GetProduct(ctx, productID)
	if err != nil || product == nil {
		log.Printf("[cms.product] failed to reload product %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload product"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}
