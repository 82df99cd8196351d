package gateway

import "context"

// RoutingContext 上游路由中间件附加到请求 context 的路由信息
// 对网关核心只读；缺失视为致命的配置错误而不是可恢复的默认值
type RoutingContext struct {
	// APIBasePath 命中的子应用 base path，未命中时为空
	APIBasePath string
	// OperationID 命中的 operation id，未命中时为空
	OperationID string
}

// routingContextKey routing context 在 context.Context 中的键
type routingContextKey struct{}

// WithRoutingContext 将路由信息附加到 context，由路由中间件调用
func WithRoutingContext(ctx context.Context, rc *RoutingContext) context.Context {
	return context.WithValue(ctx, routingContextKey{}, rc)
}

// RoutingContextFrom 从 context 中取出路由信息
func RoutingContextFrom(ctx context.Context) (*RoutingContext, bool) {
	rc, ok := ctx.Value(routingContextKey{}).(*RoutingContext)
	return rc, ok
}
