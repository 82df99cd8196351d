package response

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip 测试规范响应与原生响应的往返转换
func TestRoundTrip(t *testing.T) {
	hdrs := http.Header{}
	hdrs.Set("X-Trace-Id", "t-1")

	original := &Canonical{
		StatusCode:  201,
		Mimetype:    "application/json",
		ContentType: "application/json",
		Headers:     hdrs,
		Body:        []byte(`{"name":"Rex"}`),
	}

	native, err := ToNative(original, "application/json")
	require.NoError(t, err)

	back := ToCanonical(native, "application/json")

	assert.Equal(t, original.StatusCode, back.StatusCode)
	assert.Equal(t, original.ContentType, back.ContentType)
	assert.Equal(t, "t-1", back.Headers.Get("X-Trace-Id"))
	assert.Equal(t, original.Body, back.Body)
}

// TestToCanonicalStream 测试流式响应转换时 body 置 nil
func TestToCanonicalStream(t *testing.T) {
	s := NewStream(strings.NewReader("streaming"), 200, "application/octet-stream", nil)

	c := ToCanonical(s, "")

	assert.Equal(t, 200, c.StatusCode)
	assert.Equal(t, "application/octet-stream", c.ContentType)
	assert.Nil(t, c.Body)
}

// TestToNativeFallbackMimetype 测试 mimetype 缺失时使用回退值
func TestToNativeFallbackMimetype(t *testing.T) {
	c := &Canonical{StatusCode: 200, Body: []byte("x")}

	n, err := ToNative(c, "text/csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", n.MediaType())
}
