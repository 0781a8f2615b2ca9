package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileUserAgent(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want uaProfile
	}{
		{
			"playstation 5 browser",
			"Mozilla/5.0 (PlayStation; PlayStation 5/2.26) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/13.0 Safari/605.1.15",
			uaProfile{Device: "console", Browser: "safari", OS: "playstation"},
		},
		{
			"xbox edge",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64; Xbox; Xbox Series X) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/48.0.2564.82 Safari/537.36",
			uaProfile{Device: "console", Browser: "chrome", OS: "xbox"},
		},
		{
			"windows chrome",
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			uaProfile{Device: "desktop", Browser: "chrome", OS: "windows"},
		},
		{
			"iphone safari",
			"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			uaProfile{Device: "mobile", Browser: "safari", OS: "ios"},
		},
		{
			"android firefox",
			"Mozilla/5.0 (Android 14; Mobile; rv:120.0) Gecko/120.0 Firefox/120.0",
			uaProfile{Device: "mobile", Browser: "firefox", OS: "android"},
		},
		{
			"ipad",
			"Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/604.1",
			uaProfile{Device: "tablet", Browser: "safari", OS: "ios"},
		},
		{
			"empty user agent",
			"",
			uaProfile{Device: "desktop", Browser: "other", OS: "other"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, profileUserAgent(tt.ua))
		})
	}
}
