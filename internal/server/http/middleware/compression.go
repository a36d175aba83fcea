package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/amanshrivastava28/Sneako/internal/server/http/dto"
)

// DecompressRequest transparently handles gzip encoded request bodies.
// A body that is not valid gzip is rejected with 400.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !strings.Contains(strings.ToLower(c.GetHeader("Content-Encoding")), "gzip") {
			c.Next()
			return
		}

		original := c.Request.Body
		reader, err := gzip.NewReader(original)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Error{Error: "validation", Message: "request body is not valid gzip"})
			return
		}
		defer original.Close()
		defer reader.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}
