package handlers

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/amanshrivastava28/Sneako/internal/domain/model"
)

// pathID parses a positive integer path parameter.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		validationError(c, fmt.Sprintf("%s must be a positive integer", name))
		return 0, false
	}
	return id, true
}

// pageQuery reads the optional page and size query parameters as supplied.
// Range checks are left to the caller.
func pageQuery(c *gin.Context) (model.PageQuery, bool) {
	var q model.PageQuery
	for name, dst := range map[string]**int{"page": &q.Page, "size": &q.Size} {
		raw, ok := c.GetQuery(name)
		if !ok || raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			validationError(c, fmt.Sprintf("%s must be an integer", name))
			return model.PageQuery{}, false
		}
		*dst = &v
	}
	return q, true
}

// pageRequest reads page and size for the local paging policy; absent values are zero.
func pageRequest(c *gin.Context) (model.PageRequest, bool) {
	q, ok := pageQuery(c)
	if !ok {
		return model.PageRequest{}, false
	}
	return q.Request(), true
}
