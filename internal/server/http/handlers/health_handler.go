package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Health reports 200 while checker succeeds. A nil checker is always healthy.
func Health(checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checker != nil {
			if err := checker.HealthCheck(c.Request.Context()); err != nil {
				_ = c.Error(err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
