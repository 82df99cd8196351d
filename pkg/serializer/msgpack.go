// pkg/serializer/msgpack.go
package serializer

import (
	"bytes"
	"io"
	"reflect"

	"github.com/hashicorp/go-msgpack/v2/codec"
)

// msgpackHandle 是 msgpack 编解码的配置
// 参考 Consul 的配置: RawToString=true, MapType=map[string]interface{}
var msgpackHandle = &codec.MsgpackHandle{}

func init() {
	msgpackHandle.MapType = reflect.TypeOf(map[string]interface{}{})
	msgpackHandle.RawToString = true
}

// Encode 使用 msgpack 编码数据
func Encode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode 使用 msgpack 解码数据
func Decode(data []byte, v interface{}) error {
	return NewDecoder(bytes.NewReader(data)).Decode(v)
}

// NewEncoder 创建一个新的 msgpack 编码器
func NewEncoder(w io.Writer) *codec.Encoder {
	return codec.NewEncoder(w, msgpackHandle)
}

// NewDecoder 创建一个新的 msgpack 解码器
func NewDecoder(r io.Reader) *codec.Decoder {
	return codec.NewDecoder(r, msgpackHandle)
}

// ===============================
// Msgpack 序列化器
// ===============================

// Msgpack msgpack 序列化器
type Msgpack struct{}

// NewMsgpack 创建 msgpack 序列化器
func NewMsgpack() *Msgpack {
	return &Msgpack{}
}

// Serialize 序列化为 msgpack
func (s *Msgpack) Serialize(v any) ([]byte, error) {
	return Encode(v)
}

// Deserialize 从 msgpack 反序列化
func (s *Msgpack) Deserialize(data []byte, v any) error {
	return Decode(data, v)
}

// ContentType 返回内容类型
func (s *Msgpack) ContentType() string {
	return "application/msgpack"
}
