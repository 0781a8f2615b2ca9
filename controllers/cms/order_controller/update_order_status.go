package order_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/GameStore-Ecommerce/gamestore-backend/config"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
	"github.com/GameStore-Ecommerce/gamestore-backend/repository"
)

// UpdateOrderStatus godoc
// @Summary Update order status
// @Description Transitions an order to a new fulfillment status.
// @Tags CMS - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}
	if !req.Status.IsValid() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid status: "+string(req.Status)))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	if err := repository.UpdateOrderStatus(ctx, orderID, req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
			return
		}
		log.Printf("[cms.order] failed to update status for %s: %v", orderID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order status"))
		return
	}

	log.Printf("[cms.order] order %s -> %s", orderID, req.Status)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated successfully", gin.H{
		"id":     orderID,
		"status": req.Status,
	}))
}
