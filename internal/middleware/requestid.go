package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDContextKey = "request_id"
	requestIDHeader     = "X-Request-ID"
)

// RequestID returns the request ID attached to the context, if any.
func RequestID(c *gin.Context) string {
	v, _ := c.Get(requestIDContextKey)
	id, _ := v.(string)
	return id
}

// RequestIDMiddleware honors an inbound X-Request-ID or generates one, and
// echoes it on the response.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set(requestIDContextKey, id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
