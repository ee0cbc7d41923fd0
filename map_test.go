package dynval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapInsertionOrder(t *testing.T) {
	m := NewMap().Set("b", Int(1)).Set("a", Int(2)).Set("c", Int(3))
	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())

	// Last write wins but keeps the original position.
	m.Set("a", Int(9))
	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	got, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, int32(9), got.ToInt())
}

func TestMapDelete(t *testing.T) {
	m := NewMap().Set("a", Int(1)).Set("b", Int(2))
	m.Delete("a")
	assert.Equal(t, []string{"b"}, m.Keys())
	_, ok := m.Get("a")
	assert.False(t, ok)

	// Deleting a missing key is a no-op.
	m.Delete("zzz")
	assert.Equal(t, 1, m.Len())
}

func TestMapAll(t *testing.T) {
	m := NewMap().Set("x", Int(1)).Set("y", Int(2))

	var keys []string
	for k, v := range m.All() {
		keys = append(keys, k)
		assert.Equal(t, KindInt, v.Kind())
	}
	assert.Equal(t, []string{"x", "y"}, keys)
}

func TestMapNilReceivers(t *testing.T) {
	var m *Map
	assert.Equal(t, 0, m.Len())
	assert.Nil(t, m.Keys())
	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.Nil(t, m.Clone())
	for range m.All() {
		t.Fatal("nil map must not yield")
	}
}
