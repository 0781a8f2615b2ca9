package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GameStore-Ecommerce/gamestore-backend/config"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
	"github.com/GameStore-Ecommerce/gamestore-backend/repository"
)

// GetOrders godoc
// @Summary List all orders
// @Description Returns every order across all customers, newest first.
// @Tags CMS - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := repository.ListOrders(ctx)
	if err != nil {
		log.Printf("[cms.order] failed to list orders: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Orders fetched successfully",
		orders,
		&models.Pagination{
			Page:       1,
			Limit:      len(orders),
			Total:      len(orders),
			TotalPages: 1,
		},
	))
}
