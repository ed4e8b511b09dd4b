package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs each completed request with its method, path, status,
// latency and request id.
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"request_id", GetRequestID(c),
		}

		// Handlers attach storage errors via c.Error; callers only ever see
		// an opaque message, the detail lands here.
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
			logger.Error("request failed", attrs...)
			return
		}

		logger.Info("request completed", attrs...)
	}
}
