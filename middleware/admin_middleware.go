package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GameStore-Ecommerce/gamestore-backend/config"
	"github.com/GameStore-Ecommerce/gamestore-backend/models"
)

// RequireAdminMiddleware checks that the authenticated user is an admin.
// Must run after AuthMiddleware. The flag is re-read from the database on
// every request so a revoked admin loses access without waiting for token
// expiry.
func RequireAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - no user in context"))
			c.Abort()
			return
		}

		ctx, cancel := config.WithTimeout()
		defer cancel()

		var user models.User
		if err := config.Gorm.WithContext(ctx).
			Select("id, is_admin").
			Where("id = ?", userID).
			First(&user).Error; err != nil {
			log.Printf("[auth] failed to fetch user for admin check: %v", err)
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized - user not found"))
			c.Abort()
			return
		}

		if !user.IsAdmin {
			log.Printf("[auth] non-admin user %s attempted admin action", userID)
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - admin access required"))
			c.Abort()
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
