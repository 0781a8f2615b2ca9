package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GameStore-Ecommerce/gamestore-backend/controllers/ecommerce/order_controller"
	"github.com/GameStore-Ecommerce/gamestore-backend/middleware"
)

// SetupUserRoutes sets up the authenticated customer routes
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		// Orders
		user.GET("/orders", order_controller.GetOrders)
		user.GET("/orders/:id", order_controller.GetOrderDetails)
		user.POST("/orders", order_controller.CreateOrder)
	}
}
