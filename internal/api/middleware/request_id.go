package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/solvekit/numerics/internal/shared/id"
)

// RequestIDKey is the gin context key carrying the request id.
const RequestIDKey = "request_id"

// RequestIDHeader is the response header carrying the request id.
const RequestIDHeader = "X-Request-ID"

// RequestID attaches a ULID request id to every request, honoring an
// incoming X-Request-ID when the client supplied one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(RequestIDHeader)
		if rid == "" {
			rid = string(id.NewRequestID())
		}
		c.Set(RequestIDKey, rid)
		c.Writer.Header().Set(RequestIDHeader, rid)
		c.Next()
	}
}

// GetRequestID returns the request id attached by RequestID, if any.
func GetRequestID(c *gin.Context) string {
	if v, ok := c.Get(RequestIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
