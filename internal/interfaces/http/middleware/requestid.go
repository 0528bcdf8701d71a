package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"jirabridge/internal/shared/logger"
)

const (
	// RequestIDKey is the gin context key holding the request ID.
	RequestIDKey = "request_id"

	requestIDHeader = "X-Request-ID"
)

// RequestID assigns each request a correlation ID, honoring one supplied by
// the caller. The ID lives in the gin context and the response header; it is
// never stored in process-wide state.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(requestIDHeader, id)

		c.Next()
	}
}

// RequestLogger returns a logger scoped to the current request's ID.
func RequestLogger(c *gin.Context, base logger.Interface) logger.Interface {
	if id := c.GetString(RequestIDKey); id != "" {
		return base.With("request_id", id)
	}
	return base
}
