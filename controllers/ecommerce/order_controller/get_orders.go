package order_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GameStore-Ecommerce/gamestore-backend/config"
	"github.com/GameStore-Ecommerce/gamestore-backend/middleware"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
	"github.com/GameStore-Ecommerce/gamestore-backend/repository"
)

// GetOrders godoc
// @Summary Get own order history
// @Description Returns the authenticated user's orders, newest first.
// @Tags Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders [get]
func GetOrders(c *gin.Context) {
	userIDStr, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	orders, err := repository.ListOrdersByUser(ctx, userID)
	if err != nil {
		log.Printf("[order.list] failed to fetch orders for user %s: %v", userID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	history := make([]models.OrderHistoryResponse, 0, len(orders))
	for _, order := range orders {
		itemCount := 0
		for _, line := range order.Items {
			itemCount += line.Quantity
		}
		history = append(history, models.OrderHistoryResponse{
			ID:        order.ID,
			Status:    order.Status,
			Total:     order.Total,
			ItemCount: itemCount,
			CreatedAt: order.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", history))
}
