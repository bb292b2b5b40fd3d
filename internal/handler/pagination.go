package handler

import (
	"strconv"

	"socialnet/backend/internal/service"

	"github.com/gin-gonic/gin"
)

// queryUint parses an optional unsigned query parameter; absent or empty means zero.
func queryUint(c *gin.Context, name string) (uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, service.ValidationError("Invalid " + name)
	}
	return uint(v), nil
}

// queryLimitOffset reads limit and offset, defaulting to the service's page size and zero.
func queryLimitOffset(c *gin.Context) (limit, offset int, err error) {
	limit, err = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(service.DefaultPostsLimit)))
	if err != nil || limit < 1 {
		return 0, 0, service.ValidationError("Invalid limit")
	}
	if limit > service.MaxPostsLimit {
		limit = service.MaxPostsLimit
	}

	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, service.ValidationError("Invalid offset")
	}
	return limit, offset, nil
}
