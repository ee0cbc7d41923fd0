// Package codec centralizes document payload encoding.
//
// Codec selection is a compatibility boundary: blobs written by one codec
// must be decoded by the same codec, so persisted documents record the codec
// name in their header and select it back via ByName on load.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// Default is the default codec used by the library.
//
// This affects newly-written blobs only; existing blobs are self-describing
// and are opened by selecting the codec recorded in their header.
var Default Codec = GoJSON{}
