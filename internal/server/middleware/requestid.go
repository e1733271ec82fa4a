package middleware

import (
	"github.com/gin-gonic/gin"

	"rephraser/internal/pkg/ctxutil"
	"rephraser/internal/pkg/id"
)

const (
	// RequestIDHeader 请求 ID 响应头
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey gin.Context 中的 key
	RequestIDKey = "request_id"
)

// RequestID 为每个请求分配 ID，写入响应头、gin.Context 和 request context
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := id.FromHeader(c.GetHeader(RequestIDHeader))

		c.Set(RequestIDKey, rid)
		c.Header(RequestIDHeader, rid)
		c.Request = c.Request.WithContext(ctxutil.WithRequestID(c.Request.Context(), rid))

		c.Next()
	}
}
