package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/amanshrivastava28/Sneako/internal/pkg/requestid"
)

// RequestIDContextKey stores the request id in the gin context.
const RequestIDContextKey = "requestID"

// RequestID reuses an incoming X-Request-ID or generates one, echoes it on
// the response and stores it in the request context for downstream calls.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" {
			id = requestid.New()
		}
		c.Set(RequestIDContextKey, id)
		c.Request = c.Request.WithContext(requestid.WithID(c.Request.Context(), id))
		c.Header(requestid.Header, id)
		c.Next()
	}
}
