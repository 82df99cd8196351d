package gateway

import (
	"net/http"

	"github.com/cockroachdb/errors"
)

// stubSpec 测试用规范
type stubSpec struct {
	basePath string
	routes   []Route
}

func (s stubSpec) BasePath() string { return s.basePath }
func (s stubSpec) Routes() []Route  { return s.routes }

// stubOpSpec 测试用 operation 描述
type stubOpSpec struct {
	id       string
	handler  Handler
	parser   URIParser
	mimetype string
}

func (s stubOpSpec) OperationID() string  { return s.id }
func (s stubOpSpec) Handler() Handler     { return s.handler }
func (s stubOpSpec) URIParser() URIParser { return s.parser }
func (s stubOpSpec) Mimetype() string     { return s.mimetype }

// stubRegistry 测试用 operation 注册表，key 为 "METHOD path"
type stubRegistry map[string]stubOpSpec

func (r stubRegistry) Resolve(spec Specification, path, method string) (OperationSpec, error) {
	op, ok := r[method+" "+path]
	if !ok {
		return nil, errors.Newf("no operation for %s %s", method, path)
	}
	return op, nil
}

// stubParser 测试用参数解析器
type stubParser struct {
	params Params
	err    error
	calls  int
}

func (p *stubParser) Parse(r *http.Request) (Params, error) {
	p.calls++
	return p.params, p.err
}

// stubBinder 测试用参数绑定器，记录透传的标记
type stubBinder struct {
	sawSnakeCase bool
	calls        int
}

func (b *stubBinder) Bind(h Handler, op OperationSpec, snakeCaseParams bool) Handler {
	b.calls++
	b.sawSnakeCase = snakeCaseParams
	return h
}
