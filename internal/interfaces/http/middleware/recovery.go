package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"folios/internal/shared/logger"
	"folios/internal/shared/utils"
)

// Recovery converts panics into a generic 500 response instead of tearing
// down the connection.
func Recovery(log logger.Interface) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Errorw("panic recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		utils.ErrorResponse(c, http.StatusInternalServerError, "Internal server error occurred")
		c.Abort()
	})
}
