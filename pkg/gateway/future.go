package gateway

import "context"

// Future 尚未就绪的结果
// handler 返回 Future 即表示异步执行；Await 的结果可能仍是 Future，
// 由调度器循环等待直至得到具体值
type Future interface {
	Await(ctx context.Context) (any, error)
}

// FutureFunc 函数式 Future，Await 时才执行
type FutureFunc func(ctx context.Context) (any, error)

// Await 执行函数并返回结果
func (f FutureFunc) Await(ctx context.Context) (any, error) {
	return f(ctx)
}

// goFuture 在独立 goroutine 中执行的 Future
type goFuture struct {
	done chan struct{}
	val  any
	err  error
}

// Go 立即在新 goroutine 中执行 fn，返回其 Future
func Go(ctx context.Context, fn func(ctx context.Context) (any, error)) Future {
	f := &goFuture{done: make(chan struct{})}
	go func() {
		defer close(f.done)
		f.val, f.err = fn(ctx)
	}()
	return f
}

// Await 等待执行完成；ctx 取消时立即返回取消错误
func (f *goFuture) Await(ctx context.Context) (any, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// resolve 循环等待，直到结果不再是 Future
// 装饰器链可能返回嵌套的 Future，因此不设迭代上限
func resolve(ctx context.Context, v any, err error) (any, error) {
	for err == nil {
		f, ok := v.(Future)
		if !ok {
			break
		}
		v, err = f.Await(ctx)
	}
	return v, err
}
