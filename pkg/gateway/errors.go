package gateway

import "github.com/cockroachdb/errors"

var (
	// ErrMissingRoutingInfo 请求 context 中没有路由信息
	// 属于配置缺陷：上游路由中间件未注册，必须向外传播而不是按请求吞掉
	ErrMissingRoutingInfo = errors.New("gateway: could not find routing information in request context, make sure a routing middleware is registered upstream")

	// ErrUnknownOperation 路由信息引用了未注册的 operation
	// 属于路由表构建缺陷，按服务端错误处理
	ErrUnknownOperation = errors.New("gateway: encountered unknown operation id")

	// ErrNoRegistry 未注入 operation 注册表
	ErrNoRegistry = errors.New("gateway: no operation registry configured")
)
