package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/eventosya/marketplace-api/pkg/apperror"
)

// PathID parses the named path parameter as an int64 ID.
func PathID(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("invalid " + name)
	}
	return id, nil
}
