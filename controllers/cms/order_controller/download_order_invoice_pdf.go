package order_controller

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GameStore-Ecommerce/gamestore-backend/config"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
	"github.com/GameStore-Ecommerce/gamestore-backend/repository"
)

// DownloadOrderInvoicePDF godoc
// @Summary Download order invoice PDF
// @Description Generates an invoice PDF for the order and streams it as a file download.
// @Tags CMS - Orders
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Order ID (UUID)"
// @Success 200 "PDF file"
// @Failure 400 {object} models.ApiResponse "Invalid order ID"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/orders/{id}/invoice [get]
func DownloadOrderInvoicePDF(c *gin.Context) {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}
	log.Printf("[cms.order.invoice] request for order: %s", orderID)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	order, err := repository.GetOrder(ctx, orderID)
	if err != nil {
		log.Printf("[cms.order.invoice] database error: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	// Customer name and email for the billing block
	var customer struct {
		Email       string
		DisplayName string
	}
	if err := config.Gorm.WithContext(ctx).
		Table("users").
		Select("email, display_name").
		Where("id = ?", order.UserID).
		Scan(&customer).Error; err != nil {
		log.Printf("[cms.order.invoice] failed to fetch customer: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	pdfBuffer, err := generateOrderInvoicePDF(order, customer.DisplayName, customer.Email)
	if err != nil {
		log.Printf("[cms.order.invoice] failed to generate PDF: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to generate invoice"))
		return
	}

	filename := fmt.Sprintf("invoice-%s.pdf", order.ID)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Length", fmt.Sprintf("%d", pdfBuffer.Len()))
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")

	c.Data(http.StatusOK, "application/pdf", pdfBuffer.Bytes())

	log.Printf("[cms.order.invoice] invoice PDF downloaded for order %s", orderID)
}
