package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// HeaderRequestID 请求标识的响应头
const HeaderRequestID = "X-Request-Id"

// requestIDKey request id 在 context.Context 中的键
type requestIDKey struct{}

// RequestID 为每个请求生成唯一标识并写入 context 与响应头
// 调用方已携带 X-Request-Id 时沿用之
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), requestIDKey{}, id)
		c.Request = c.Request.WithContext(ctx)
		c.Writer.Header().Set(HeaderRequestID, id)

		c.Next()
	}
}

// RequestIDFrom 从 context 中取出 request id，不存在时返回空
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// RequestIDExtractor pkg/logger 的 context 字段提取器
// 配合 logger.WithContextExtractor 使用，让日志自动携带 request_id
func RequestIDExtractor(ctx context.Context) []zap.Field {
	if id := RequestIDFrom(ctx); id != "" {
		return []zap.Field{zap.String("request_id", id)}
	}
	return nil
}
