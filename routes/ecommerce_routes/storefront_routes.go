package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	store_product "github.com/GameStore-Ecommerce/gamestore-backend/controllers/ecommerce/product_controller"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)        // List with filters
		products.GET("/:id", store_product.GetStorefrontProductByID) // Single product
	}

	store.GET("/home", store_product.GetStorefrontHome) // Featured, new arrivals, latest releases
}
