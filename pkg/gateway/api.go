package gateway

// API 单个规范对应的子应用，自身同样具备调度能力，可继续嵌套
type API struct {
	dispatcher

	spec Specification
}

// newAPI 从规范构造子应用并注册其全部 operation
// 注册表、绑定器、响应策略与 logger 继承自父实例，可用选项覆盖
func newAPI(spec Specification, parent *dispatcher, opts ...Option) (*API, error) {
	api := &API{
		dispatcher: newDispatcher(spec.BasePath(), parent.log.Named("api")),
		spec:       spec,
	}
	api.registry = parent.registry
	api.binder = parent.binder
	api.builder = parent.builder
	api.snakeCaseParams = parent.snakeCaseParams

	for _, opt := range opts {
		opt(&api.dispatcher)
	}

	for _, rt := range spec.Routes() {
		if err := api.AddOperation(rt.Path, rt.Method); err != nil {
			return nil, err
		}
	}

	return api, nil
}

// AddOperation 从注册表解析 (path, method) 并注册 Operation
func (a *API) AddOperation(path, method string) error {
	if a.registry == nil {
		return ErrNoRegistry
	}

	spec, err := a.registry.Resolve(a.spec, path, method)
	if err != nil {
		return err
	}

	op := newOperation(spec, a, a.binder, a.snakeCaseParams)
	a.operations[op.OperationID()] = op
	return nil
}

// Operation 按 operation id 查找已注册的 operation
func (a *API) Operation(operationID string) (*Operation, bool) {
	op, ok := a.operations[operationID]
	return op, ok
}
