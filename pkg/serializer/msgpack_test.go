package serializer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string `codec:"name"`
	Value int    `codec:"value"`
	Data  []byte `codec:"data"`
}

func TestEncodeDecode(t *testing.T) {
	t.Run("struct", func(t *testing.T) {
		original := &testStruct{
			Name:  "pet",
			Value: 42,
			Data:  []byte("hello"),
		}

		data, err := Encode(original)
		require.NoError(t, err)
		assert.NotEmpty(t, data)

		var decoded testStruct
		err = Decode(data, &decoded)
		require.NoError(t, err)

		assert.Equal(t, original.Name, decoded.Name)
		assert.Equal(t, original.Value, decoded.Value)
		assert.Equal(t, original.Data, decoded.Data)
	})

	t.Run("stream", func(t *testing.T) {
		var buf bytes.Buffer
		enc := NewEncoder(&buf)

		// 同一个流上连续写入多个值
		require.NoError(t, enc.Encode(&testStruct{Name: "Rex", Value: 1}))
		require.NoError(t, enc.Encode(&testStruct{Name: "Momo", Value: 2}))

		dec := NewDecoder(&buf)
		var first, second testStruct
		require.NoError(t, dec.Decode(&first))
		require.NoError(t, dec.Decode(&second))

		assert.Equal(t, "Rex", first.Name)
		assert.Equal(t, "Momo", second.Name)
		assert.Equal(t, 2, second.Value)
	})

	t.Run("map", func(t *testing.T) {
		original := map[string]interface{}{
			"name": "Rex",
			"age":  float64(3),
		}

		data, err := Encode(original)
		require.NoError(t, err)

		var decoded map[string]interface{}
		err = Decode(data, &decoded)
		require.NoError(t, err)

		assert.Equal(t, "Rex", decoded["name"])
	})
}

func TestSerializers(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		s := NewJSON()
		assert.Equal(t, "application/json", s.ContentType())

		data, err := s.Serialize(map[string]string{"name": "Rex"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Rex"}`, string(data))

		var decoded map[string]string
		require.NoError(t, s.Deserialize(data, &decoded))
		assert.Equal(t, "Rex", decoded["name"])
	})

	t.Run("msgpack", func(t *testing.T) {
		s := NewMsgpack()
		assert.Equal(t, "application/msgpack", s.ContentType())

		data, err := s.Serialize(map[string]interface{}{"ok": true})
		require.NoError(t, err)

		var decoded map[string]interface{}
		require.NoError(t, s.Deserialize(data, &decoded))
		assert.Equal(t, true, decoded["ok"])
	})

	t.Run("raw", func(t *testing.T) {
		s := NewRaw()

		data, err := s.Serialize("plain")
		require.NoError(t, err)
		assert.Equal(t, []byte("plain"), data)

		var out string
		require.NoError(t, s.Deserialize([]byte("plain"), &out))
		assert.Equal(t, "plain", out)

		var bad int
		assert.ErrorIs(t, s.Deserialize(data, &bad), ErrUnsupportedTarget)
	})
}
