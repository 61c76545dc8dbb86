package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

// bindJSON decodes and validates the body. On failure the response is
// already written.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}
	if fields, ok := validators.FieldErrors(err); ok {
		httperr.Validation(c, fields)
		return false
	}
	httperr.BadRequest(c, "invalid_request", "malformed request body")
	return false
}

func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "invalid id")
		return 0, false
	}
	return uint(id), true
}
