package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GameStore-Ecommerce/gamestore-backend/controllers/cms/order_controller"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")
	{
		order.GET("", order_controller.GetOrders)
		order.PATCH("/:id/status", order_controller.UpdateOrderStatus)
		order.GET("/:id/invoice", order_controller.DownloadOrderInvoicePDF)
	}
}
