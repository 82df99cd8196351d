package response

import (
	"net/http"
	"reflect"

	"github.com/lk2023060901/xopenapi/pkg/serializer"
)

// payloadKind 载荷形状的封闭分类
type payloadKind int

const (
	scalarPayload payloadKind = iota
	structuredPayload
)

// classify 对载荷形状做一次性分类
// 映射、序列 (非 []byte) 与结构体视为结构化载荷，选择 JSON 变体
func classify(data any) payloadKind {
	switch data.(type) {
	case nil, string, []byte:
		return scalarPayload
	}

	v := reflect.ValueOf(data)
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return scalarPayload
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return structuredPayload
	default:
		return scalarPayload
	}
}

// Builder 响应构造器，持有 body 规整步骤的实现
type Builder struct {
	preparer BodyPreparer
}

// NewBuilder 创建响应构造器
func NewBuilder(p BodyPreparer) *Builder {
	if p == nil {
		p = NewDefaultPreparer()
	}
	return &Builder{preparer: p}
}

var defaultBuilder = NewBuilder(nil)

// Build 使用默认 Builder 构造原生响应
func Build(data any, mimetype, contentType string, statusCode int, headers http.Header) (Native, error) {
	return defaultBuilder.Build(data, mimetype, contentType, statusCode, headers)
}

// Build 按 handler 返回值构造原生响应
func (b *Builder) Build(data any, mimetype, contentType string, statusCode int, headers http.Header) (Native, error) {
	// 原生响应只能作为整个返回值，不允许嵌套在 Result 中
	if _, ok := data.(Native); ok {
		return nil, ErrInvalidReturnShape
	}

	hdrs := cloneHeader(headers)
	if res, ok := data.(Result); ok {
		if _, ok := res.Data.(Native); ok {
			return nil, ErrInvalidReturnShape
		}
		for key, values := range res.Headers {
			for _, value := range values {
				hdrs.Add(key, value)
			}
		}
	}

	d, status, serialized, err := b.preparer.Prepare(data, mimetype, statusCode)
	if err != nil {
		return nil, err
	}

	// 内容类型优先级: 显式指定 > 声明的 mimetype > 序列化步骤推导
	ct := contentType
	if ct == "" {
		ct = mimetype
	}
	if ct == "" {
		ct = serialized
	}

	// 仍未确定时按载荷类型推断
	if ct == "" {
		switch d.(type) {
		case string:
			ct = "text/plain"
		case []byte:
			ct = "application/octet-stream"
		}
	}

	// 按载荷形状选择响应变体
	switch classify(d) {
	case structuredPayload:
		return NewJSON(d, status, ct, hdrs)
	default:
		body, err := scalarBytes(d)
		if err != nil {
			return nil, err
		}
		return NewRaw(body, status, ct, hdrs), nil
	}
}

var rawSerializer = serializer.NewRaw()

// scalarBytes 将标量载荷物化为字节，nil 保持为空 body
func scalarBytes(data any) ([]byte, error) {
	if data == nil {
		return nil, nil
	}
	return rawSerializer.Serialize(data)
}
