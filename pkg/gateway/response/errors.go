package response

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidReturnShape 原生响应不允许嵌套在 Result 中返回
	// 原生响应只能作为 handler 的整个返回值
	ErrInvalidReturnShape = errors.New("response: cannot return a native response inside a Result, only raw data can be returned in Result")
)
