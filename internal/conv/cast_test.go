package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntToUint32(t *testing.T) {
	v, err := IntToUint32(42)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)

	_, err = IntToUint32(-1)
	assert.Error(t, err)
}

func TestInt64ToInt32(t *testing.T) {
	v, err := Int64ToInt32(-42)
	require.NoError(t, err)
	assert.Equal(t, int32(-42), v)

	_, err = Int64ToInt32(math.MaxInt32 + 1)
	assert.Error(t, err)
	_, err = Int64ToInt32(math.MinInt32 - 1)
	assert.Error(t, err)
}

func TestFloat64ToInt32(t *testing.T) {
	tests := []struct {
		name    string
		in      float64
		want    int32
		wantErr bool
	}{
		{"Truncates", 3.9, 3, false},
		{"TruncatesNegative", -3.9, -3, false},
		{"Max", math.MaxInt32, math.MaxInt32, false},
		{"TooLarge", 1e12, 0, true},
		{"NaN", math.NaN(), 0, true},
		{"Inf", math.Inf(1), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Float64ToInt32(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestFloat64ToInt64(t *testing.T) {
	v, err := Float64ToInt64(1e15)
	require.NoError(t, err)
	assert.Equal(t, int64(1e15), v)

	_, err = Float64ToInt64(math.NaN())
	assert.Error(t, err)
	_, err = Float64ToInt64(2e19)
	assert.Error(t, err)
}
