package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lk2023060901/xopenapi/pkg/web/middleware"
)

// 业务码约定：0 为成功，其余沿用 HTTP 语义
const (
	CodeOK           = 0
	CodeInvalidParam = http.StatusBadRequest
	CodeInternal     = http.StatusInternalServerError
)

// Envelope 手动路由与网关外围接口的统一响应结构
// 规范驱动的 operation 响应不经过这里，由响应构造器直接写出
type Envelope struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Data      any    `json:"data"`
	RequestID string `json:"request_id,omitempty"`
}

// Success 写出成功响应，自动携带请求标识
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Envelope{
		Code:      CodeOK,
		Message:   "ok",
		Data:      data,
		RequestID: middleware.RequestIDFrom(c.Request.Context()),
	})
}

// Error 写出错误响应
func Error(c *gin.Context, httpStatus, code int, message string) {
	c.JSON(httpStatus, Envelope{
		Code:      code,
		Message:   message,
		RequestID: middleware.RequestIDFrom(c.Request.Context()),
	})
}

// AbortWithError 写出错误响应并中断后续 handler
func AbortWithError(c *gin.Context, httpStatus, code int, message string) {
	c.AbortWithStatusJSON(httpStatus, Envelope{
		Code:      code,
		Message:   message,
		RequestID: middleware.RequestIDFrom(c.Request.Context()),
	})
}
