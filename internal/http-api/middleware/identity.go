package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const identityKey = "userIdentifier"

// maxUserAgentLen bounds the user-agent fragment folded into the identifier.
const maxUserAgentLen = 50

// Identity derives a best-effort anonymous user identifier from the request
// and stores it in the context for handlers. It is a coarse, spoofable
// network-origin string (forwarded-for header, falling back to real-ip, then
// the connection address, suffixed with a truncated user-agent). It is NOT a
// security boundary and must never be treated as one; it only scopes like
// toggles per visitor.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.GetHeader("X-Forwarded-For")
		if ip != "" {
			// First hop only; the rest is proxy chain.
			if idx := strings.IndexByte(ip, ','); idx >= 0 {
				ip = ip[:idx]
			}
			ip = strings.TrimSpace(ip)
		}
		if ip == "" {
			ip = c.GetHeader("X-Real-IP")
		}
		if ip == "" {
			ip = c.ClientIP()
		}
		if ip == "" {
			ip = "unknown"
		}

		userAgent := c.GetHeader("User-Agent")
		if userAgent == "" {
			userAgent = "unknown"
		}
		if len(userAgent) > maxUserAgentLen {
			userAgent = userAgent[:maxUserAgentLen]
		}

		c.Set(identityKey, ip+"-"+userAgent)
		c.Next()
	}
}

// UserIdentifier returns the identifier derived by Identity, or "unknown"
// when the middleware did not run.
func UserIdentifier(c *gin.Context) string {
	if id, exists := c.Get(identityKey); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return "unknown"
}
