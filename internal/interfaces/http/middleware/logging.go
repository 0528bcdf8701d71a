package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"jirabridge/internal/shared/logger"
)

// RequestLogging logs every completed request with latency and status.
func RequestLogging(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"status", c.Writer.Status(),
			"latency", latency,
			"client_ip", c.ClientIP(),
			"body_size", c.Writer.Size(),
		}

		if requestID := c.GetString(RequestIDKey); requestID != "" {
			args = append(args, "request_id", requestID)
		}

		status := c.Writer.Status()
		switch {
		case status >= 500:
			log.Errorw("HTTP request completed with server error", args...)
		case status >= 400:
			log.Warnw("HTTP request completed with client error", args...)
		default:
			log.Infow("HTTP request completed", args...)
		}
	}
}
