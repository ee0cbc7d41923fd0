package dynval

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/dynval/codec"
)

func testDocument() Value {
	return MapOf(NewMap().
		Set("title", String("hello world")).
		Set("count", Int(42)).
		Set("ratio", Float(0.125)).
		Set("tags", List(String("a"), String("b"), Value{})))
}

func TestBlobRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"Defaults", nil},
		{"StdlibCodec", []Option{WithCodec(codec.JSON{})}},
		{"LZ4", []Option{WithCompression(CompressionLZ4)}},
		{"ZSTD", []Option{WithCompression(CompressionZSTD)}},
		{"NilOptionValues", []Option{WithCodec(nil), WithLogger(nil)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			want := testDocument()
			require.NoError(t, Save(&buf, want, tt.opts...))

			got, err := Load(&buf)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %s", got.ToJSON(false))
		})
	}
}

func TestBlobCompressedIsSmaller(t *testing.T) {
	// Highly repetitive payload so both algorithms actually compress.
	m := NewMap()
	for i := 0; i < 64; i++ {
		m.Set(strings.Repeat("k", 8)+string(rune('a'+i%26))+fmt.Sprintf("%02d", i), String(strings.Repeat("abc", 50)))
	}
	v := MapOf(m)

	var plain, packed bytes.Buffer
	require.NoError(t, Save(&plain, v))
	require.NoError(t, Save(&packed, v, WithCompression(CompressionZSTD)))
	assert.Less(t, packed.Len(), plain.Len())

	got, err := Load(&packed)
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
}

func TestBlobIncompressibleFallsBack(t *testing.T) {
	// A tiny document does not shrink under LZ4; Save stores it uncompressed
	// and Load must still succeed.
	var buf bytes.Buffer
	v := Int(1)
	require.NoError(t, Save(&buf, v, WithCompression(CompressionLZ4)))

	got, err := Load(&buf)
	require.NoError(t, err)
	assert.True(t, v.Equal(got))
}

func TestLoadRejectsBadInput(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		_, err := Load(bytes.NewReader(nil))
		assert.ErrorIs(t, err, ErrInvalidBlob)
	})

	t.Run("BadMagic", func(t *testing.T) {
		_, err := Load(strings.NewReader("NOPE....garbage"))
		assert.ErrorIs(t, err, ErrInvalidBlob)
	})

	t.Run("UnknownCodec", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Save(&buf, Int(1)))
		b := buf.Bytes()
		// Corrupt the codec name in place (offset 8 = after magic+version+comp+nameLen).
		b[8] = 'z'
		_, err := Load(bytes.NewReader(b))
		assert.ErrorIs(t, err, ErrUnknownCodec)
	})

	t.Run("Truncated", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Save(&buf, testDocument()))
		_, err := Load(bytes.NewReader(buf.Bytes()[:buf.Len()-4]))
		assert.Error(t, err)
	})
}
