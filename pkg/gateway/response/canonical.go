package response

import "net/http"

// Canonical 框架无关的规范响应，是网关核心与外层传输序列化的契约边界
type Canonical struct {
	StatusCode  int
	Mimetype    string
	ContentType string
	Headers     http.Header
	Body        []byte
}

// ToCanonical 将原生响应转换为规范响应
// 流式等不持有物化 body 的变体，Body 置为 nil 而不是报错
func ToCanonical(n Native, mimetype string) *Canonical {
	c := &Canonical{
		StatusCode:  n.StatusCode(),
		Mimetype:    mimetype,
		ContentType: n.MediaType(),
		Headers:     n.Headers(),
	}
	if n.HasBody() {
		c.Body = n.Body()
	}
	return c
}

// ToNative 将规范响应转换为原生响应
// mimetype 缺失时使用 fallbackMimetype
func (b *Builder) ToNative(c *Canonical, fallbackMimetype string) (Native, error) {
	mimetype := c.Mimetype
	if mimetype == "" {
		mimetype = fallbackMimetype
	}
	return b.Build(c.Body, mimetype, c.ContentType, c.StatusCode, c.Headers)
}

// ToNative 使用默认 Builder 的版本
func ToNative(c *Canonical, fallbackMimetype string) (Native, error) {
	return defaultBuilder.ToNative(c, fallbackMimetype)
}
