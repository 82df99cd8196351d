package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/xopenapi/pkg/gateway"
)

// RouteResolver 路由解析协作者
// 按请求计算命中的子应用 base path 与 operation id，逻辑由规范路由表提供
type RouteResolver interface {
	Resolve(r *http.Request) (*gateway.RoutingContext, error)
}

// Routing 规范路由中间件
// 网关核心要求每个请求在到达调度器之前携带 RoutingContext；
// 解析失败时附加空的 RoutingContext，由调度器回退到手动路由表
func Routing(resolver RouteResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		rc, err := resolver.Resolve(c.Request)
		if err != nil || rc == nil {
			rc = &gateway.RoutingContext{}
		}

		ctx := gateway.WithRoutingContext(c.Request.Context(), rc)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
