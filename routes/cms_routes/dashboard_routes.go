package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/GameStore-Ecommerce/gamestore-backend/controllers/cms/dashboard_controller"
)

func SetupDashboardRoutes(rg *gin.RouterGroup) {
	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", dashboard_controller.GetDashboardStats)
	}
}
