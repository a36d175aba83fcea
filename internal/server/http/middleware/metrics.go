package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amanshrivastava28/Sneako/internal/pkg/metrics"
)

// Metrics records request count and latency per route template.
// Unmatched paths are grouped under a single label.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
