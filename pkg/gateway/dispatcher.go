// Package gateway 是规范驱动 API 网关的调度核心：
// 上游路由中间件确定 operation 之后，由这里定位 handler、统一调用契约、
// 并把返回值规整为传输层可写出的响应。
package gateway

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/lk2023060901/xopenapi/pkg/gateway/response"
	"github.com/lk2023060901/xopenapi/pkg/logger"
)

// dispatcher App 与 API 共用的调度核心
// 两个映射仅在启动阶段写入，请求阶段只读，读路径无需加锁
type dispatcher struct {
	basePath        string
	apis            map[string]*API
	operations      map[string]*Operation
	router          *gin.Engine // 手动注册路由的回退路由表
	registry        OperationRegistry
	binder          ParamBinder
	builder         *response.Builder
	snakeCaseParams bool
	log             logger.Logger
}

// newDispatcher 创建调度核心
func newDispatcher(basePath string, log logger.Logger) dispatcher {
	if log == nil {
		log = logger.NewNoop()
	}

	return dispatcher{
		basePath:   basePath,
		apis:       make(map[string]*API),
		operations: make(map[string]*Operation),
		router:     gin.New(),
		builder:    response.NewBuilder(nil),
		log:        log,
	}
}

// BasePath 返回本实例配置的 base path
func (d *dispatcher) BasePath() string { return d.basePath }

// Router 返回手动路由表，用于直接注册 gin 路由
func (d *dispatcher) Router() *gin.Engine { return d.router }

// Dispatch 调度一个请求：
//  1. context 中没有路由信息 -> ErrMissingRoutingInfo，向外传播
//  2. api_base_path 命中已注册子应用且不等于自身 base path -> 整体委托
//  3. operation_id 命中 -> 调用 operation，循环等待 Future，必要时构造响应
//  4. operation_id 为空且未命中 -> 回退到手动路由表
//  5. operation_id 非空且未命中 -> ErrUnknownOperation
//
// 三个分支互斥，单个请求恰好选择其一
func (d *dispatcher) Dispatch(w http.ResponseWriter, r *http.Request) error {
	rc, ok := RoutingContextFrom(r.Context())
	if !ok {
		return ErrMissingRoutingInfo
	}

	// 子应用委托优先；不等于自身 base path 的判断防止自委托死循环
	if rc.APIBasePath != "" && rc.APIBasePath != d.basePath {
		if api, ok := d.apis[rc.APIBasePath]; ok {
			d.log.DebugContext(r.Context(), "delegating to sub api", "base_path", rc.APIBasePath)
			return api.Dispatch(w, r)
		}
	}

	op, ok := d.operations[rc.OperationID]
	if !ok {
		if rc.OperationID == "" {
			// 未经过规范路由的请求回退到手动路由表
			d.router.ServeHTTP(w, r)
			return nil
		}
		return errors.Wrapf(ErrUnknownOperation, "operation %q", rc.OperationID)
	}

	d.log.DebugContext(r.Context(), "invoking operation", "operation_id", op.OperationID())

	result, err := op.Invoke(r.Context(), &Request{Request: r})
	// 结果可能是嵌套的 Future，循环等待直至得到具体值
	result, err = resolve(r.Context(), result, err)
	if err != nil {
		return err
	}

	native, err := d.toNative(result, op)
	if err != nil {
		return err
	}
	return native.Write(w)
}

// toNative 将具体化后的返回值规整为原生响应
func (d *dispatcher) toNative(result any, op *Operation) (response.Native, error) {
	switch v := result.(type) {
	case response.Native:
		return v, nil
	case *response.Canonical:
		return d.builder.ToNative(v, op.Mimetype())
	default:
		return d.builder.Build(result, op.Mimetype(), "", 0, nil)
	}
}

// ServeHTTP 实现 http.Handler
// 没有外层错误处理中间件兜底时，调度错误记录日志并以 500 响应
func (d *dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := d.Dispatch(w, r); err != nil {
		d.log.ErrorContext(r.Context(), "dispatch failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// AddAPI 注册一个以 base path 为作用域的子应用
func (d *dispatcher) AddAPI(spec Specification, opts ...Option) (*API, error) {
	api, err := newAPI(spec, d, opts...)
	if err != nil {
		return nil, err
	}

	d.apis[api.BasePath()] = api
	d.log.Info("registered sub api", "base_path", api.BasePath(), "operations", len(api.operations))
	return api, nil
}

// AddRoute 注册规范之外的手动路由
// 不指定 method 时匹配所有方法
func (d *dispatcher) AddRoute(path string, h gin.HandlerFunc, methods ...string) {
	if len(methods) == 0 {
		d.router.Any(path, h)
		return
	}
	for _, m := range methods {
		d.router.Handle(m, path, h)
	}
}

// Route 装饰器风格的手动路由注册
func (d *dispatcher) Route(path string, methods ...string) func(gin.HandlerFunc) gin.HandlerFunc {
	return func(h gin.HandlerFunc) gin.HandlerFunc {
		d.AddRoute(path, h, methods...)
		return h
	}
}
