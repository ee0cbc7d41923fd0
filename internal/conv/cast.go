package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Int64ToInt32 converts int64 to int32 safely.
func Int64ToInt32(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int32", v)
	}
	return int32(v), nil
}

// Float64ToInt32 converts float64 to int32 safely, truncating toward zero.
// NaN and out-of-range values are rejected: converting them directly is
// implementation-defined in Go.
func Float64ToInt32(f float64) (int32, error) {
	if math.IsNaN(f) {
		return 0, fmt.Errorf("cannot convert NaN to int32")
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("float overflow: %g cannot be converted to int32", f)
	}
	return int32(f), nil
}

// Float64ToInt64 converts float64 to int64 safely, truncating toward zero.
func Float64ToInt64(f float64) (int64, error) {
	if math.IsNaN(f) {
		return 0, fmt.Errorf("cannot convert NaN to int64")
	}
	// MaxInt64 is not exactly representable as float64; the nearest value
	// below it is 1<<63 - 1024.
	if f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, fmt.Errorf("float overflow: %g cannot be converted to int64", f)
	}
	return int64(f), nil
}
