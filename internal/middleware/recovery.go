package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/solarwatch/blackout-api/internal/logging"
)

// Recovery creates a Gin middleware that converts panics into the
// service's structured 500 response instead of an empty body.
func Recovery(logger *logging.StandardLogger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		err := fmt.Errorf("%v", recovered)
		logger.WithError(err).Error("Recovered from panic",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
	})
}
