package utils

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/GameStore-Ecommerce/gamestore-backend/config"
)

// uaProfile is the coarse client classification stored with each login event.
type uaProfile struct {
	Device  string
	Browser string
	OS      string
}

// LogLoginEvent appends a sign-in to the login_events audit table. Raw pgx
// insert: append-only, no model, failures are logged but never block login.
func LogLoginEvent(c *gin.Context, userID uuid.UUID, provider string) error {
	ctx := c.Request.Context()

	ipAddress := c.ClientIP()
	userAgent := c.GetHeader("User-Agent")
	profile := profileUserAgent(userAgent)

	query := `
		INSERT INTO login_events (
			id, user_id, provider, logged_in_at, ip_address, user_agent,
			device, browser, os
		) VALUES ($1, $2, $3, NOW(), $4, $5, $6, $7, $8)
	`

	_, err := config.DB.Exec(ctx, query,
		uuid.Must(uuid.NewV7()).String(),
		userID.String(),
		provider,
		ipAddress,
		userAgent,
		profile.Device,
		profile.Browser,
		profile.OS,
	)
	if err != nil {
		log.Printf("❌ Failed to log login event: %v", err)
		return err
	}

	log.Printf("✅ Login event logged for user %s via %s from %s", userID, provider, ipAddress)
	return nil
}

// profileUserAgent classifies the signing-in client. Console browsers matter
// for a storefront selling PS5 and Xbox games: sign-ins come from the
// consoles themselves, not just phones and desktops.
func profileUserAgent(userAgent string) uaProfile {
	ua := strings.ToLower(userAgent)
	profile := uaProfile{Device: "desktop", Browser: "other", OS: "other"}

	switch {
	case strings.Contains(ua, "playstation"):
		profile.Device = "console"
		profile.OS = "playstation"
	case strings.Contains(ua, "xbox"):
		profile.Device = "console"
		profile.OS = "xbox"
	case strings.Contains(ua, "ipad") || strings.Contains(ua, "tablet"):
		profile.Device = "tablet"
	case strings.Contains(ua, "mobile") || strings.Contains(ua, "iphone") || strings.Contains(ua, "android"):
		profile.Device = "mobile"
	}

	if profile.OS == "other" {
		switch {
		case strings.Contains(ua, "windows"):
			profile.OS = "windows"
		case strings.Contains(ua, "android"):
			profile.OS = "android"
		case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"):
			profile.OS = "ios"
		case strings.Contains(ua, "mac os"):
			profile.OS = "macos"
		case strings.Contains(ua, "linux"):
			profile.OS = "linux"
		}
	}

	switch {
	case strings.Contains(ua, "edg/"):
		profile.Browser = "edge"
	case strings.Contains(ua, "opr/") || strings.Contains(ua, "opera"):
		profile.Browser = "opera"
	case strings.Contains(ua, "chrome"):
		profile.Browser = "chrome"
	case strings.Contains(ua, "firefox"):
		profile.Browser = "firefox"
	case strings.Contains(ua, "safari"):
		profile.Browser = "safari"
	}

	return profile
}
