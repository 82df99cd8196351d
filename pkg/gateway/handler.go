package gateway

import (
	"context"
	"net/http"
)

// Params URIParser 解析出的路径/查询参数
type Params map[string]any

// Request 进入网关核心的请求
type Request struct {
	*http.Request

	// Params 参数绑定阶段填充，handler 调用前保证完成
	Params Params
}

// Handler 业务处理函数，返回值可以是:
//   - response.Native: 直接作为最终响应
//   - response.Result: 带状态码/响应头的多段返回
//   - *response.Canonical: 规范响应，经 ToNative 转换后返回
//   - Future: 异步结果，调度器会循环等待直至得到具体值
//   - 其他任意值: 按载荷形状构造响应
type Handler func(ctx context.Context, req *Request) (any, error)

// Specification 已解析的 API 规范（解析与校验由外部协作者完成）
type Specification interface {
	// BasePath 规范声明的 base path
	BasePath() string
	// Routes 规范声明的全部 (path, method)
	Routes() []Route
}

// Route 规范中的一个 path/method 组合
type Route struct {
	Path   string
	Method string
}

// OperationSpec 注册表按 (path, method) 解析出的单个 operation
type OperationSpec interface {
	// OperationID 稳定的操作标识，网关实例内唯一
	OperationID() string
	// Handler 原始业务处理函数
	Handler() Handler
	// URIParser 路径/查询参数解析器
	URIParser() URIParser
	// Mimetype 声明的响应内容类型，未声明时为空
	Mimetype() string
}

// OperationRegistry operation 注册表，按 (path, method) 解析 operation
type OperationRegistry interface {
	Resolve(spec Specification, path, method string) (OperationSpec, error)
}

// URIParser 路径/查询参数解析协作者
type URIParser interface {
	Parse(r *http.Request) (Params, error)
}

// ParamBinder 参数绑定协作者
// 将原始 handler 包装为按 operation 参数声明绑定入参的 handler
// snakeCaseParams 标记仅透传，含义由绑定器自行解释
type ParamBinder interface {
	Bind(h Handler, op OperationSpec, snakeCaseParams bool) Handler
}
