package order_controller

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/GameStore-Ecommerce/gamestore-backend/cart"
	"github.com/GameStore-Ecommerce/gamestore-backend/config"
	"github.com/GameStore-Ecommerce/gamestore-backend/middleware"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
	"github.com/GameStore-Ecommerce/gamestore-backend/repository"
)

// CreateOrder godoc
// @Summary Checkout the cart
// @Description Creates an order from the submitted cart lines. Prices are resolved server-side from the catalog, accumulated through the cart, and snapshotted into the order.
// @Tags Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CreateOrderRequest true "Cart lines, shipping address and payment method"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse "Invalid request or unknown product"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /orders [post]
func CreateOrder(c *gin.Context) {
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

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Rebuild the cart against current catalog prices. Quantities come from
	// the client; prices never do.
	basket := cart.New()
	for _, line := range req.Items {
		product, err := repository.GetProduct(ctx, line.ProductID)
		if err != nil {
			log.Printf("[order.create] failed to fetch product %s: %v", line.ProductID, err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to resolve cart"))
			return
		}
		if product == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, fmt.Sprintf("Unknown product: %s", line.ProductID)))
			return
		}
		basket.AddItem(product)
		basket.UpdateQuantity(product.ID, line.Quantity)
	}

	if basket.ItemCount() == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Cart is empty"))
		return
	}

	lines := make(models.OrderLineList, 0, len(req.Items))
	for _, item := range basket.Items() {
		lines = append(lines, models.OrderLine{
			ProductID: item.Product.ID,
			Title:     item.Product.Title,
			Platform:  item.Product.Platform,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
		})
	}

	addressJSON, err := json.Marshal(req.ShippingAddress)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid shipping address"))
		return
	}

	order := models.Order{
		UserID:          userID,
		Items:           lines,
		Total:           basket.Total(),
		Status:          models.OrderPending,
		ShippingAddress: datatypes.JSON(addressJSON),
		PaymentMethod:   req.PaymentMethod,
	}

	orderID, err := repository.CreateOrder(ctx, &order)
	if err != nil {
		log.Printf("[order.create] failed to create order: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create order"))
		return
	}

	log.Printf("[order.create] order %s created for user %s, total %.2f", orderID, userID, order.Total)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Order created successfully", order))
}
