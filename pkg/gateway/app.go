package gateway

import (
	"github.com/lk2023060901/xopenapi/pkg/gateway/response"
	"github.com/lk2023060901/xopenapi/pkg/logger"
)

// App 网关应用，持有顶层调度核心与已挂载的子应用
// 所有注册操作在非并发的启动阶段完成，请求阶段只读
type App struct {
	dispatcher
}

// Option 调度核心的配置选项，App 与子 API 共用
type Option func(*dispatcher)

// WithBasePath 设置实例自身的 base path（仅 App 需要，API 从规范读取）
func WithBasePath(basePath string) Option {
	return func(d *dispatcher) {
		d.basePath = basePath
	}
}

// WithLogger 设置 logger
func WithLogger(l logger.Logger) Option {
	return func(d *dispatcher) {
		if l != nil {
			d.log = l
		}
	}
}

// WithRegistry 注入 operation 注册表
func WithRegistry(registry OperationRegistry) Option {
	return func(d *dispatcher) {
		d.registry = registry
	}
}

// WithBinder 注入参数绑定器
func WithBinder(binder ParamBinder) Option {
	return func(d *dispatcher) {
		d.binder = binder
	}
}

// WithPreparer 设置响应构造的 body 规整实现
func WithPreparer(p response.BodyPreparer) Option {
	return func(d *dispatcher) {
		d.builder = response.NewBuilder(p)
	}
}

// WithSnakeCaseParams 开启参数名转换标记（由参数绑定器解释）
func WithSnakeCaseParams(enabled bool) Option {
	return func(d *dispatcher) {
		d.snakeCaseParams = enabled
	}
}

// NewApp 创建网关应用
func NewApp(opts ...Option) *App {
	app := &App{dispatcher: newDispatcher("", logger.Default().Named("gateway"))}

	for _, opt := range opts {
		opt(&app.dispatcher)
	}

	return app
}
