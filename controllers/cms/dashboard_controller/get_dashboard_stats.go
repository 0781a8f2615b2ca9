package dashboard_controller

import (
	"log"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/GameStore-Ecommerce/gamestore-backend/config"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
	"github.com/GameStore-Ecommerce/gamestore-backend/repository"
)

// GetDashboardStats godoc
// @Summary Get dashboard stats
// @Description Returns the admin dashboard counters: product count, order count, total revenue and pending orders.
// @Tags CMS - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/dashboard/stats [get]
func GetDashboardStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var (
		wg           sync.WaitGroup
		productCount int
		orders       []models.Order
		productErr   error
		orderErr     error
	)

	// Two independent reads, run them concurrently
	wg.Add(2)
	go func() {
		defer wg.Done()
		productCount, productErr = repository.CountProducts(ctx)
	}()
	go func() {
		defer wg.Done()
		orders, orderErr = repository.ListOrders(ctx)
	}()
	wg.Wait()

	if productErr != nil {
		log.Printf("[cms.dashboard] failed to count products: %v", productErr)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch dashboard stats"))
		return
	}
	if orderErr != nil {
		log.Printf("[cms.dashboard] failed to fetch orders: %v", orderErr)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch dashboard stats"))
		return
	}

	stats := models.DashboardStats{
		TotalProducts: productCount,
		TotalOrders:   len(orders),
	}
	for _, order := range orders {
		if order.Status != models.OrderCancelled {
			stats.TotalRevenue += order.Total
		}
		if order.Status == models.OrderPending {
			stats.PendingOrders++
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats fetched successfully", stats))
}
