package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/lanchonete-pos/internal/presentation/http/dto/response"
)

// parseID reads a positive numeric path parameter, answering 400 otherwise
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}
