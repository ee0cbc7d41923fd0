package dynval

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/buger/jsonparser"
	gojson "github.com/goccy/go-json"

	"github.com/hupe1980/dynval/internal/conv"
)

// FromJSON decodes a JSON document into a Value tree.
//
// Mapping: null decodes to the invalid Value (not KindUndefined); a number
// that is numerically equal to its 32-bit integer truncation decodes as
// KindInt, otherwise KindFloat ("2.0" becomes Int(2), a documented lossy
// coalescing); arrays decode in document order; object keys are
// last-write-wins.
//
// On malformed input the zero Value and an error wrapping ErrMalformedJSON
// are returned; a tree is never partially populated. Recursion depth equals
// JSON nesting depth; there is no explicit depth guard.
func FromJSON(data []byte) (Value, error) {
	// jsonparser is lenient, so strict well-formedness is checked up front.
	if !gojson.Valid(data) {
		return Value{}, ErrMalformedJSON
	}
	raw, dt, _, err := jsonparser.Get(data)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	v, err := decodeNode(raw, dt)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}
	return v, nil
}

// FromJSONString decodes a JSON document given as a string.
func FromJSONString(s string) (Value, error) {
	return FromJSON([]byte(s))
}

func decodeNode(data []byte, dt jsonparser.ValueType) (Value, error) {
	switch dt {
	case jsonparser.Null:
		return Value{}, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(data)
		if err != nil {
			return Value{}, err
		}
		return Bool(b), nil
	case jsonparser.Number:
		f, err := jsonparser.ParseFloat(data)
		if err != nil {
			return Value{}, err
		}
		if i, cerr := conv.Float64ToInt32(f); cerr == nil && float64(i) == f {
			return Int(i), nil
		}
		return Float(f), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(data)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	case jsonparser.Array:
		var (
			elems []Value
			cbErr error
		)
		_, err := jsonparser.ArrayEach(data, func(value []byte, dt jsonparser.ValueType, _ int, err error) {
			if cbErr != nil {
				return
			}
			if err != nil {
				cbErr = err
				return
			}
			child, derr := decodeNode(value, dt)
			if derr != nil {
				cbErr = derr
				return
			}
			elems = append(elems, child)
		})
		if err != nil {
			return Value{}, err
		}
		if cbErr != nil {
			return Value{}, cbErr
		}
		return List(elems...), nil
	case jsonparser.Object:
		m := NewMap()
		err := jsonparser.ObjectEach(data, func(key, value []byte, dt jsonparser.ValueType, _ int) error {
			k, kerr := jsonparser.ParseString(key)
			if kerr != nil {
				return kerr
			}
			child, derr := decodeNode(value, dt)
			if derr != nil {
				return derr
			}
			m.Set(k, child)
			return nil
		})
		if err != nil {
			return Value{}, err
		}
		return MapOf(m), nil
	default:
		return Value{}, fmt.Errorf("unexpected JSON node type %v", dt)
	}
}

// ToJSON encodes the value as JSON text. Encoding is total: invalid,
// undefined and otherwise unencodable states fold to null.
//
// A date encodes as its raw integer epoch seconds, not a formatted string
// (the streaming formatters differ here). A Custom payload is emitted as the
// raw, unescaped fragment returned by its String method; a nil handle emits
// null.
func (v Value) ToJSON(pretty bool) string {
	compact := v.appendJSON(make([]byte, 0, 64))
	if !pretty {
		return string(compact)
	}
	var buf bytes.Buffer
	if err := gojson.Indent(&buf, compact, "", "    "); err != nil {
		// Custom fragments may not be valid JSON; fall back to compact.
		return string(compact)
	}
	return buf.String()
}

// MarshalJSON implements json.Marshaler.
func (v Value) MarshalJSON() ([]byte, error) {
	return v.appendJSON(nil), nil
}

// UnmarshalJSON implements json.Unmarshaler with FromJSON semantics.
func (v *Value) UnmarshalJSON(data []byte) error {
	dec, err := FromJSON(data)
	if err != nil {
		return err
	}
	*v = dec
	return nil
}

func (v Value) appendJSON(dst []byte) []byte {
	switch v.kind {
	case KindBool:
		return strconv.AppendBool(dst, v.b)
	case KindInt:
		return strconv.AppendInt(dst, int64(v.i), 10)
	case KindDate:
		return strconv.AppendInt(dst, v.d, 10)
	case KindFloat:
		if math.IsNaN(v.f) || math.IsInf(v.f, 0) {
			return append(dst, "null"...)
		}
		return strconv.AppendFloat(dst, v.f, 'g', -1, 64)
	case KindString:
		return appendJSONString(dst, v.s)
	case KindList:
		dst = append(dst, '[')
		for i := range v.l {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = v.l[i].appendJSON(dst)
		}
		return append(dst, ']')
	case KindMap:
		dst = append(dst, '{')
		for i, k := range v.m.keys {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendJSONString(dst, k)
			dst = append(dst, ':')
			dst = v.m.vals[k].appendJSON(dst)
		}
		return append(dst, '}')
	case KindCustom:
		if v.c == nil {
			return append(dst, "null"...)
		}
		return append(dst, v.c.String()...)
	default:
		return append(dst, "null"...)
	}
}

// appendJSONString delegates string escaping to the external printer.
func appendJSONString(dst []byte, s string) []byte {
	b, err := gojson.Marshal(s)
	if err != nil {
		return append(dst, "null"...)
	}
	return append(dst, b...)
}
