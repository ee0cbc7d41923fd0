package dynval

import "iter"

// Map is an insertion-ordered mapping from string keys to Values.
//
// Iteration order is the order in which keys were first inserted; it is
// observable in serialized output. Setting an existing key replaces its value
// but keeps its original position.
//
// Map is not safe for concurrent mutation.
type Map struct {
	keys []string
	vals map[string]Value
}

// NewMap returns an empty Map.
func NewMap() *Map {
	return &Map{vals: make(map[string]Value)}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Set inserts or replaces the value for key and returns m for chaining.
func (m *Map) Set(key string, v Value) *Map {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
	return m
}

// Get returns the value for key and whether it is present.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return Value{}, false
	}
	v, ok := m.vals[key]
	return v, ok
}

// Delete removes key if present.
func (m *Map) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.vals[key]; !ok {
		return
	}
	delete(m.vals, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// All iterates entries in insertion order.
func (m *Map) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.vals[k]) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the map; every value is cloned recursively.
func (m *Map) Clone() *Map {
	if m == nil {
		return nil
	}
	out := &Map{
		keys: make([]string, len(m.keys)),
		vals: make(map[string]Value, len(m.vals)),
	}
	copy(out.keys, m.keys)
	for k, v := range m.vals {
		out.vals[k] = v.Clone()
	}
	return out
}

// Equal reports whether both maps hold equal values under the same keys in
// the same order.
func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	if m == nil || o == nil {
		return true
	}
	for i, k := range m.keys {
		if o.keys[i] != k {
			return false
		}
		if !m.vals[k].Equal(o.vals[k]) {
			return false
		}
	}
	return true
}
