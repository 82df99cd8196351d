package logger

import (
	"context"

	"go.uber.org/zap"
)

// ContextFieldExtractor 从请求 context 提取日志字段的函数类型
// 网关的 *Context 日志方法经由它携带请求范围的字段（如 request_id）
type ContextFieldExtractor func(ctx context.Context) []zap.Field

// DefaultContextExtractor 不提取任何字段
// 作为默认实现存在，调用方无需做 nil 检查
func DefaultContextExtractor(ctx context.Context) []zap.Field {
	return nil
}
