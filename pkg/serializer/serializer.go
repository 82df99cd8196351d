package serializer

import (
	"encoding/json"
	"errors"
)

// 错误定义
var (
	ErrUnsupportedTarget = errors.New("serializer: unsupported deserialize target")
)

// Serializer 序列化器接口
type Serializer interface {
	// Serialize 序列化
	Serialize(v any) ([]byte, error)
	// Deserialize 反序列化
	Deserialize(data []byte, v any) error
	// ContentType 内容类型
	ContentType() string
}

// ===============================
// JSON 序列化器
// ===============================

// JSON JSON 序列化器
type JSON struct{}

// NewJSON 创建 JSON 序列化器
func NewJSON() *JSON {
	return &JSON{}
}

// Serialize 序列化为 JSON
func (s *JSON) Serialize(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Deserialize 从 JSON 反序列化
func (s *JSON) Deserialize(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// ContentType 返回内容类型
func (s *JSON) ContentType() string {
	return "application/json"
}

// ===============================
// 原始字节序列化器
// ===============================

// Raw 原始字节序列化器
// 响应构造的标量载荷路径由它物化 body：string 与 []byte 原样透传，
// 其余标量类型退化为 JSON 字面量
type Raw struct{}

// NewRaw 创建原始字节序列化器
func NewRaw() *Raw {
	return &Raw{}
}

// Serialize 物化标量载荷为字节
func (s *Raw) Serialize(v any) ([]byte, error) {
	switch val := v.(type) {
	case []byte:
		return val, nil
	case string:
		return []byte(val), nil
	default:
		return json.Marshal(v)
	}
}

// Deserialize 反序列化
func (s *Raw) Deserialize(data []byte, v any) error {
	switch ptr := v.(type) {
	case *[]byte:
		*ptr = make([]byte, len(data))
		copy(*ptr, data)
		return nil
	case *string:
		*ptr = string(data)
		return nil
	default:
		return ErrUnsupportedTarget
	}
}

// ContentType 返回内容类型
func (s *Raw) ContentType() string {
	return "application/octet-stream"
}
