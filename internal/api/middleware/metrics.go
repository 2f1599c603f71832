package middleware

import (
	"strconv"
	"time"

	"hotel-correlation/internal/metrics"

	"github.com/gin-gonic/gin"
)

// Metrics records request latency per route. Uses the route template,
// not the raw path, so run ids do not explode the label set.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestDuration.
			WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).
			Observe(time.Since(start).Seconds())
	}
}
