package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/yigit/studentportal/internal/app/models/dto"
	"github.com/yigit/studentportal/internal/pkg/logger"
)

func init() {
	// Unknown body fields are a client error rather than silently dropped
	binding.EnableDecoderDisallowUnknownFields = true
}

// BindJSON binds and validates the request body. On failure it writes a 400 response and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Invalid request payload")
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse("Validation failed", dto.HandleValidationError(err)...))
		return false
	}
	return true
}

// BindQuery binds query string parameters. On failure it writes a 400 response and returns false.
func BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		logger.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("Invalid query parameters")
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid query parameters", dto.HandleValidationError(err)...))
		return false
	}
	return true
}
