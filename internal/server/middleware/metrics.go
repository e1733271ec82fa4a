package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"rephraser/internal/pkg/metrics"
)

// Metrics 记录请求计数，使用路由模板避免标签基数膨胀
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		metrics.RequestsTotal.
			WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).
			Inc()
	}
}
