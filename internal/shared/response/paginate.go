package response

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// Paginate slices an in-memory result using the page/page_size query
// parameters and writes it with pagination meta.
func Paginate[T any](c *gin.Context, status int, rows []T) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if pageSize < 1 {
		pageSize = 10
	}

	total := int64(len(rows))
	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(rows) {
		start = len(rows)
	}
	if end > len(rows) {
		end = len(rows)
	}

	meta := NewPaginationMeta(total, page, pageSize)
	Success(c, status, rows[start:end], &meta)
}
