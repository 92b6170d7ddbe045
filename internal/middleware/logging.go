package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/solarwatch/blackout-api/internal/logging"
)

// RequestLogger creates a Gin middleware that logs every request in the
// service's standardized API log format.
func RequestLogger(logger *logging.StandardLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		logger.LogAPIRequest(
			c.Request.Method,
			path,
			c.Writer.Status(),
			time.Since(start).Milliseconds(),
			c.ClientIP(),
		)
	}
}
