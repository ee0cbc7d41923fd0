package dynval

import (
	"strconv"
	"time"

	"github.com/hupe1980/dynval/internal/conv"
)

// Kind identifies the concrete alternative stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid (unset or cleared) value.
	KindInvalid Kind = iota
	// KindUndefined represents an explicitly undefined value.
	KindUndefined
	// KindBool represents a boolean value.
	KindBool
	// KindInt represents a 32-bit signed integer value.
	KindInt
	// KindFloat represents a 64-bit float value.
	KindFloat
	// KindDate represents a timestamp stored as seconds since the Unix epoch.
	KindDate
	// KindString represents a UTF-8 string value.
	KindString
	// KindList represents an ordered list of values.
	KindList
	// KindMap represents an insertion-ordered map of string keys to values.
	KindMap
	// KindCustom represents an out-of-band custom payload.
	KindCustom
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindUndefined:
		return "undefined"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDate:
		return "date"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	case KindCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Value is a dynamically-typed value holding exactly one of a fixed set of
// alternatives, identified by Kind.
//
// The zero Value is KindInvalid. Assigning a Value shares interior List/Map
// storage with the source; use Clone for an independent deep copy. Custom
// payloads are always shared, never deep-copied.
//
// A Value must never contain itself transitively. That is a caller
// responsibility and is not checked.
type Value struct {
	kind Kind
	b    bool
	i    int32
	f    float64
	d    int64 // seconds since the Unix epoch, KindDate only
	s    string
	l    []Value
	m    *Map
	c    Custom
}

// Undefined returns an explicitly undefined Value.
//
// Undefined and the zero (invalid) Value are distinct at the data-model level
// but collapse to the same external representation (JSON null) everywhere.
func Undefined() Value { return Value{kind: KindUndefined} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer Value.
func Int(i int32) Value { return Value{kind: KindInt, i: i} }

// Float returns a float Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Date returns a date Value holding t truncated to second precision.
func Date(t time.Time) Value { return Value{kind: KindDate, d: t.Unix()} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List returns a list Value holding the given elements in order.
func List(elems ...Value) Value { return Value{kind: KindList, l: elems} }

// MapOf returns a map Value wrapping m. A nil m yields an empty map.
func MapOf(m *Map) Value {
	if m == nil {
		m = NewMap()
	}
	return Value{kind: KindMap, m: m}
}

// CustomOf returns a Value holding a shared handle to c.
func CustomOf(c Custom) Value { return Value{kind: KindCustom, c: c} }

// Kind returns the kind of the active alternative.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is invalid or undefined.
func (v Value) IsNull() bool { return v.kind == KindInvalid || v.kind == KindUndefined }

// Clear resets the value to KindInvalid, dropping any payload references.
// It is safe to call on an already-invalid value.
func (v *Value) Clear() { *v = Value{} }

// Clone returns a deep copy of the value. String payloads are immutable and
// shared; List and Map payloads are copied recursively; Custom payloads share
// the same underlying instance.
func (v Value) Clone() Value {
	switch v.kind {
	case KindList:
		out := v
		out.l = make([]Value, len(v.l))
		for i := range v.l {
			out.l[i] = v.l[i].Clone()
		}
		return out
	case KindMap:
		out := v
		out.m = v.m.Clone()
		return out
	default:
		return v
	}
}

// Equal reports structural equality. Custom payloads compare by handle
// identity, not rendered output.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f
	case KindDate:
		return v.d == o.d
	case KindString:
		return v.s == o.s
	case KindList:
		if len(v.l) != len(o.l) {
			return false
		}
		for i := range v.l {
			if !v.l[i].Equal(o.l[i]) {
				return false
			}
		}
		return true
	case KindMap:
		return v.m.Equal(o.m)
	case KindCustom:
		return v.c == o.c
	default:
		return true
	}
}

// ToBool returns the value coerced to a boolean. Numbers coerce to
// non-zero, strings parse via strconv.ParseBool; anything else yields false.
func (v Value) ToBool() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i != 0
	case KindFloat:
		return v.f != 0
	case KindDate:
		return v.d != 0
	case KindString:
		b, err := strconv.ParseBool(v.s)
		if err != nil {
			return false
		}
		return b
	default:
		return false
	}
}

// ToInt returns the value coerced to a 32-bit integer. Floats truncate,
// booleans map to 0/1, dates yield their epoch seconds, strings parse as
// decimal; out-of-range and unparseable inputs yield 0.
func (v Value) ToInt() int32 {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		i, err := conv.Float64ToInt32(v.f)
		if err != nil {
			return 0
		}
		return i
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindDate:
		i, err := conv.Int64ToInt32(v.d)
		if err != nil {
			return 0
		}
		return i
	case KindString:
		i, err := strconv.ParseInt(v.s, 10, 32)
		if err != nil {
			return 0
		}
		return int32(i)
	default:
		return 0
	}
}

// ToFloat returns the value coerced to a float64.
func (v Value) ToFloat() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindInt:
		return float64(v.i)
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	case KindDate:
		return float64(v.d)
	case KindString:
		f, err := strconv.ParseFloat(v.s, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// ToString returns the value coerced to a string. Scalars render in their
// canonical text form, dates as a formatted time, Custom via its String
// method; containers and null values yield "".
func (v Value) ToString() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(int64(v.i), 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindDate:
		return formatTime(v.d)
	case KindCustom:
		if v.c == nil {
			return ""
		}
		return v.c.String()
	default:
		return ""
	}
}

// ToDate returns the value coerced to a time.Time in UTC. Integers and
// floats are interpreted as epoch seconds; anything else yields the zero
// time.
func (v Value) ToDate() time.Time {
	switch v.kind {
	case KindDate:
		return time.Unix(v.d, 0).UTC()
	case KindInt:
		return time.Unix(int64(v.i), 0).UTC()
	case KindFloat:
		i, err := conv.Float64ToInt64(v.f)
		if err != nil {
			return time.Time{}
		}
		return time.Unix(i, 0).UTC()
	default:
		return time.Time{}
	}
}

// ToCustom returns the Custom handle, or nil if the value is not KindCustom.
func (v Value) ToCustom() Custom {
	if v.kind != KindCustom {
		return nil
	}
	return v.c
}

// ToList returns the underlying list, or nil if the value is not KindList.
// The returned slice is shared with the value.
func (v Value) ToList() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.l
}

// ToMap returns the underlying map, or nil if the value is not KindMap.
// The returned map is shared with the value.
func (v Value) ToMap() *Map {
	if v.kind != KindMap {
		return nil
	}
	return v.m
}
