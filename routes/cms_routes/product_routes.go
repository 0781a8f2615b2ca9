package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GameStore-Ecommerce/gamestore-backend/controllers/cms/product_controller"
)

func SetupProductRoutes(rg *gin.RouterGroup) {
	product := rg.Group("/products")
	{
		product.GET("", product_controller.GetProducts)
		product.GET("/:id", product_controller.GetProductByID)

		product.POST("", product_controller.CreateProduct)
		product.PATCH("/:id", product_controller.UpdateProduct)
		product.DELETE("/:id", product_controller.DeleteProduct)

		product.POST("/:id/images", product_controller.UploadProductImages)
	}
}
