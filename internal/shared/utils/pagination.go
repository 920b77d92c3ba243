package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/darna-inc/darna/internal/shared/constants"
)

// Pagination holds parsed offset/limit parameters.
type Pagination struct {
	Offset int
	Limit  int
}

// ValidatePagination normalizes offset/limit.
// Negative offsets become 0. Limit defaults to DefaultLimit and is capped at MaxLimit.
func ValidatePagination(offset, limit int) Pagination {
	if offset < 0 {
		offset = 0
	}
	if limit < 1 {
		limit = constants.DefaultLimit
	}
	if limit > constants.MaxLimit {
		limit = constants.MaxLimit
	}

	return Pagination{Offset: offset, Limit: limit}
}

// ParsePagination parses offset and limit from the query string.
// Unparseable values fall back to the defaults.
func ParsePagination(c *gin.Context) Pagination {
	offset := parseQueryInt(c, "offset", 0)
	limit := parseQueryInt(c, "limit", constants.DefaultLimit)
	return ValidatePagination(offset, limit)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return defaultVal
}

// ParseUintParam parses a positive integer path parameter.
func ParseUintParam(c *gin.Context, key string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(key), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
