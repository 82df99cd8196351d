package response

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildShapeDispatch 测试按载荷形状选择响应变体
func TestBuildShapeDispatch(t *testing.T) {
	t.Run("map selects json kind", func(t *testing.T) {
		n, err := Build(map[string]string{"name": "Rex"}, "", "", 0, nil)
		require.NoError(t, err)

		j, ok := n.(*JSON)
		require.True(t, ok, "expected *JSON, got %T", n)
		assert.Equal(t, http.StatusOK, j.StatusCode())
		assert.Equal(t, "application/json", j.MediaType())
		assert.JSONEq(t, `{"name":"Rex"}`, string(j.Body()))
	})

	t.Run("slice selects json kind", func(t *testing.T) {
		n, err := Build([]int{1, 2, 3}, "", "", 0, nil)
		require.NoError(t, err)
		assert.IsType(t, (*JSON)(nil), n)
	})

	t.Run("struct selects json kind", func(t *testing.T) {
		type pet struct {
			Name string `json:"name"`
		}
		n, err := Build(&pet{Name: "Rex"}, "", "", 0, nil)
		require.NoError(t, err)
		assert.IsType(t, (*JSON)(nil), n)
	})

	t.Run("string selects raw kind with text/plain", func(t *testing.T) {
		n, err := Build("hello", "", "", 0, nil)
		require.NoError(t, err)

		r, ok := n.(*Raw)
		require.True(t, ok, "expected *Raw, got %T", n)
		assert.Equal(t, "text/plain", r.MediaType())
		assert.Equal(t, []byte("hello"), r.Body())
	})

	t.Run("bytes select raw kind with octet-stream", func(t *testing.T) {
		n, err := Build([]byte{0x1, 0x2}, "", "", 0, nil)
		require.NoError(t, err)

		r, ok := n.(*Raw)
		require.True(t, ok)
		assert.Equal(t, "application/octet-stream", r.MediaType())
	})

	t.Run("nil data yields 204", func(t *testing.T) {
		n, err := Build(nil, "", "", 0, nil)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, n.StatusCode())
	})

	t.Run("numeric scalar materializes as literal bytes", func(t *testing.T) {
		n, err := Build(42, "", "", 0, nil)
		require.NoError(t, err)

		r, ok := n.(*Raw)
		require.True(t, ok, "expected *Raw, got %T", n)
		assert.Equal(t, []byte("42"), r.Body())
		// 非 string/[]byte 的标量不触发内容类型推断
		assert.Empty(t, r.MediaType())
	})
}

// TestBuildContentTypePrecedence 测试内容类型优先级
func TestBuildContentTypePrecedence(t *testing.T) {
	// 显式 contentType 优先于声明的 mimetype
	n, err := Build("hi", "application/json", "text/html", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "text/html", n.MediaType())

	// 声明的 mimetype 次之
	n, err = Build("hi", "application/xml", "", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/xml", n.MediaType())
}

// TestBuildResult 测试 Result 形式的返回值
func TestBuildResult(t *testing.T) {
	t.Run("data with status", func(t *testing.T) {
		n, err := Build(Result{Data: "not found", Status: 404}, "", "", 0, nil)
		require.NoError(t, err)

		assert.Equal(t, 404, n.StatusCode())
		assert.Equal(t, "text/plain", n.MediaType())
		assert.Equal(t, []byte("not found"), n.Body())
	})

	t.Run("result headers are merged", func(t *testing.T) {
		hdrs := http.Header{}
		hdrs.Set("X-Request-Id", "abc")
		n, err := Build(Result{Data: "ok", Status: 200, Headers: hdrs}, "", "", 0, nil)
		require.NoError(t, err)
		assert.Equal(t, "abc", n.Headers().Get("X-Request-Id"))
	})

	t.Run("native nested in result is rejected", func(t *testing.T) {
		native := NewRaw([]byte("x"), 200, "", nil)

		_, err := Build(Result{Data: native, Status: 404}, "", "", 0, nil)
		assert.ErrorIs(t, err, ErrInvalidReturnShape)

		// 其他元素不影响判定
		_, err = Build(Result{Data: native}, "application/json", "text/html", 500, http.Header{"K": {"v"}})
		assert.ErrorIs(t, err, ErrInvalidReturnShape)
	})

	t.Run("native passed directly to build is rejected", func(t *testing.T) {
		_, err := Build(NewRaw(nil, 200, "", nil), "", "", 0, nil)
		assert.ErrorIs(t, err, ErrInvalidReturnShape)
	})
}

// TestBuildMsgpackPrepare 测试 msgpack 类 mimetype 的提前编码
func TestBuildMsgpackPrepare(t *testing.T) {
	n, err := Build(map[string]any{"ok": true}, "application/msgpack", "", 0, nil)
	require.NoError(t, err)

	// 提前编码后载荷已是字节，选择 Raw 变体
	r, ok := n.(*Raw)
	require.True(t, ok, "expected *Raw, got %T", n)
	assert.Equal(t, "application/msgpack", r.MediaType())
	assert.NotEmpty(t, r.Body())
}

// TestResponseWrite 测试响应写入传输层
func TestResponseWrite(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		n, err := Build(map[string]string{"name": "Rex"}, "", "", 0, nil)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		require.NoError(t, n.Write(rec))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"name":"Rex"}`, rec.Body.String())
	})

	t.Run("stream", func(t *testing.T) {
		s := NewStream(strings.NewReader("chunked data"), 200, "text/plain", nil)

		rec := httptest.NewRecorder()
		require.NoError(t, s.Write(rec))
		assert.Equal(t, "chunked data", rec.Body.String())
	})
}
