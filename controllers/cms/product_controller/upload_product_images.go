package product_controller

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalog_cache "github.com/GameStore-Ecommerce/gamestore-backend/cache"
	"github.com/GameStore-Ecommerce/gamestore-backend/config"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
	"github.com/GameStore-Ecommerce/gamestore-backend/repository"
)

// UploadProductImages godoc
// @Summary Upload product images
// @Description Uploads the attached files to the product's Cloudinary folder and appends the resulting URLs to the product's image list.
// @Tags CMS - Products
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product ID (UUID)"
// @Param images formData file true "Image files"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{id}/images [post]
func UploadProductImages(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Failed to parse form data"))
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No image files provided"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	product, err := repository.GetProduct(ctx, productID)
	if err != nil {
		log.Printf("[cms.product] failed to fetch product %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product"))
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	// Uploads go against Cloudinary, give them more room than a DB round trip
	uploadCtx, uploadCancel := context.WithTimeout(c.Request.Context(), 60*time.Second)
	defer uploadCancel()

	urls, err := cloudinaryService.UploadProductImages(uploadCtx, files, productID.String())
	if err != nil {
		log.Printf("[cms.product] failed to upload images for %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to upload images"))
		return
	}

	images := append(models.StringList{}, product.Images...)
	images = append(images, urls...)

	if err := repository.UpdateProduct(ctx, productID, map[string]interface{}{"images": images}); err != nil {
		log.Printf("[cms.product] failed to save image URLs for %s: %v", productID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save image URLs"))
		return
	}

	catalog_cache.Invalidate()

	log.Printf("[cms.product] uploaded %d image(s) for %s", len(urls), productID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Images uploaded successfully", gin.H{
		"uploaded": urls,
		"images":   images,
	}))
}
