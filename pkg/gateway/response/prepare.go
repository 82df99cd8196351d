package response

import (
	"strings"

	"github.com/lk2023060901/xopenapi/pkg/serializer"
)

// BodyPreparer body/status 规整步骤
// 输入可能是裸数据或 Result，输出三元组: 规整后的数据、状态码、序列化步骤推导出的 mimetype
type BodyPreparer interface {
	Prepare(data any, mimetype string, statusCode int) (any, int, string, error)
}

// DefaultPreparer 默认的 body/status 规整实现
// 结构化载荷保持原样交由 JSON 变体序列化；msgpack 类 mimetype 在此提前编码
type DefaultPreparer struct {
	msgpack serializer.Serializer
}

// NewDefaultPreparer 创建默认规整器
func NewDefaultPreparer() *DefaultPreparer {
	return &DefaultPreparer{msgpack: serializer.NewMsgpack()}
}

// Prepare 规整 body 与状态码
func (p *DefaultPreparer) Prepare(data any, mimetype string, statusCode int) (any, int, string, error) {
	d := data
	if res, ok := data.(Result); ok {
		d = res.Data
		if res.Status != 0 {
			statusCode = res.Status
		}
	}

	if statusCode == 0 {
		if d == nil {
			statusCode = 204
		} else {
			statusCode = 200
		}
	}

	serialized := ""
	if isMsgpackMimetype(mimetype) && classify(d) == structuredPayload {
		body, err := p.msgpack.Serialize(d)
		if err != nil {
			return nil, 0, "", err
		}
		d = body
		serialized = p.msgpack.ContentType()
	}

	return d, statusCode, serialized, nil
}

// isMsgpackMimetype 判断是否为 msgpack 类 mimetype
func isMsgpackMimetype(mimetype string) bool {
	return strings.HasSuffix(mimetype, "/msgpack") || strings.HasSuffix(mimetype, "+msgpack")
}
