package gateway

import "context"

// Operation 规范声明的单个操作的调用包装
// 注册时构造一次，此后不可变，随所属 API 销毁
type Operation struct {
	fn              Handler // 组合了参数绑定与响应装饰后的可调用对象
	uriParser       URIParser
	api             *API // 所属 API，响应构造策略的来源
	mimetype        string
	operationID     string
	snakeCaseParams bool
}

// newOperation 从注册表解析出的 OperationSpec 构造 Operation
// 组合顺序: 参数解析 -> 参数绑定 -> 原始 handler
func newOperation(spec OperationSpec, api *API, binder ParamBinder, snakeCaseParams bool) *Operation {
	op := &Operation{
		uriParser:       spec.URIParser(),
		api:             api,
		mimetype:        spec.Mimetype(),
		operationID:     spec.OperationID(),
		snakeCaseParams: snakeCaseParams,
	}

	fn := spec.Handler()
	if binder != nil {
		fn = binder.Bind(fn, spec, snakeCaseParams)
	}
	op.fn = op.decorate(fn)

	return op
}

// decorate 响应装饰：保证参数解析先于 handler 调用完成
func (o *Operation) decorate(fn Handler) Handler {
	return func(ctx context.Context, req *Request) (any, error) {
		if o.uriParser != nil && req.Params == nil {
			params, err := o.uriParser.Parse(req.Request)
			if err != nil {
				return nil, err
			}
			req.Params = params
		}
		return fn(ctx, req)
	}
}

// Invoke 调用 operation，每个请求恰好调用一次
// 返回值可能是 Future，由调度器循环等待
// handler 抛出的错误原样向外传播，此处不捕获也不转换
func (o *Operation) Invoke(ctx context.Context, req *Request) (any, error) {
	return o.fn(ctx, req)
}

// OperationID 返回操作标识
func (o *Operation) OperationID() string { return o.operationID }

// Mimetype 返回声明的响应内容类型
func (o *Operation) Mimetype() string { return o.mimetype }
