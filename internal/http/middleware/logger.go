package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"busbooking/internal/utils"
)

// Logger emits one LogEvent line per request after the handler chain
// has finished.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		utils.LogEvent(GetRequestID(c), "http", "request", fmt.Sprintf(
			"method=%s path=%s status=%d latency_ms=%.3f ip=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			float64(time.Since(start).Microseconds())/1000.0,
			c.ClientIP(),
		))
	}
}
