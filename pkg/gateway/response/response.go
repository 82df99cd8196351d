// Package response 负责网关内部规范响应与传输层原生响应之间的双向转换，
// 以及按 handler 返回值形状构造原生响应。
package response

import (
	"io"
	"net/http"

	"github.com/lk2023060901/xopenapi/pkg/serializer"
)

// Native 传输层原生响应
// body 以能力方法暴露：流式变体不持有物化的 body，HasBody 返回 false
type Native interface {
	StatusCode() int
	MediaType() string
	Headers() http.Header
	HasBody() bool
	Body() []byte
	Write(w http.ResponseWriter) error
}

// Result handler 的多段返回值（数据 + 状态码 + 响应头）
// 对应只返回数据的场景，直接返回数据本身即可
type Result struct {
	Data    any
	Status  int
	Headers http.Header
}

// 确保各变体实现了 Native 接口
var (
	_ Native = (*Raw)(nil)
	_ Native = (*JSON)(nil)
	_ Native = (*Stream)(nil)
)

// ===============================
// Raw 通用响应
// ===============================

// Raw 通用响应变体，body 为已就绪的原始字节
type Raw struct {
	status  int
	media   string
	headers http.Header
	body    []byte
}

// NewRaw 创建通用响应
func NewRaw(body []byte, status int, mediaType string, headers http.Header) *Raw {
	return &Raw{
		status:  status,
		media:   mediaType,
		headers: cloneHeader(headers),
		body:    body,
	}
}

func (r *Raw) StatusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

func (r *Raw) MediaType() string { return r.media }

func (r *Raw) Headers() http.Header { return r.headers }

func (r *Raw) HasBody() bool { return true }

func (r *Raw) Body() []byte { return r.body }

// Write 将响应写入传输层
func (r *Raw) Write(w http.ResponseWriter) error {
	writeHeaders(w, r.headers, r.media)
	w.WriteHeader(r.StatusCode())
	if len(r.body) == 0 {
		return nil
	}
	_, err := w.Write(r.body)
	return err
}

// ===============================
// JSON JSON 序列化响应
// ===============================

// JSON JSON 变体，构造时即完成序列化
type JSON struct {
	status  int
	media   string
	headers http.Header
	value   any
	body    []byte
}

// NewJSON 创建 JSON 响应，构造时序列化 value
func NewJSON(value any, status int, mediaType string, headers http.Header) (*JSON, error) {
	body, err := serializer.NewJSON().Serialize(value)
	if err != nil {
		return nil, err
	}

	if mediaType == "" {
		mediaType = "application/json"
	}

	return &JSON{
		status:  status,
		media:   mediaType,
		headers: cloneHeader(headers),
		value:   value,
		body:    body,
	}, nil
}

func (j *JSON) StatusCode() int {
	if j.status == 0 {
		return http.StatusOK
	}
	return j.status
}

func (j *JSON) MediaType() string { return j.media }

func (j *JSON) Headers() http.Header { return j.headers }

func (j *JSON) HasBody() bool { return true }

func (j *JSON) Body() []byte { return j.body }

// Value 返回序列化前的原始值
func (j *JSON) Value() any { return j.value }

// Write 将响应写入传输层
func (j *JSON) Write(w http.ResponseWriter) error {
	writeHeaders(w, j.headers, j.media)
	w.WriteHeader(j.StatusCode())
	_, err := w.Write(j.body)
	return err
}

// ===============================
// Stream 流式响应
// ===============================

// Stream 流式变体，不持有物化的 body
type Stream struct {
	status  int
	media   string
	headers http.Header
	reader  io.Reader
}

// NewStream 创建流式响应
func NewStream(r io.Reader, status int, mediaType string, headers http.Header) *Stream {
	return &Stream{
		status:  status,
		media:   mediaType,
		headers: cloneHeader(headers),
		reader:  r,
	}
}

func (s *Stream) StatusCode() int {
	if s.status == 0 {
		return http.StatusOK
	}
	return s.status
}

func (s *Stream) MediaType() string { return s.media }

func (s *Stream) Headers() http.Header { return s.headers }

// HasBody 流式响应没有物化的 body
func (s *Stream) HasBody() bool { return false }

func (s *Stream) Body() []byte { return nil }

// Write 将流内容拷贝到传输层
func (s *Stream) Write(w http.ResponseWriter) error {
	writeHeaders(w, s.headers, s.media)
	w.WriteHeader(s.StatusCode())
	if s.reader == nil {
		return nil
	}
	_, err := io.Copy(w, s.reader)
	return err
}

// writeHeaders 写入响应头与内容类型
func writeHeaders(w http.ResponseWriter, headers http.Header, mediaType string) {
	for key, values := range headers {
		for _, value := range values {
			w.Header().Add(key, value)
		}
	}
	if mediaType != "" && w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", mediaType)
	}
}

// cloneHeader 复制响应头，nil 返回空 Header
func cloneHeader(h http.Header) http.Header {
	if h == nil {
		return http.Header{}
	}
	return h.Clone()
}
