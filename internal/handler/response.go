package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rephraser/internal/model"
	"rephraser/internal/service"
)

// statusFor 服务层错误分类 -> HTTP 状态码
func statusFor(kind service.Kind) int {
	switch kind {
	case service.KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError 写入 {detail} 错误响应
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(statusFor(service.KindOf(err)), model.ErrorResponse{Detail: err.Error()})
}

// abortWithBindError 请求体格式不合法
func abortWithBindError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusUnprocessableEntity, model.ErrorResponse{Detail: err.Error()})
}
