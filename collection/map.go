package collection

import "iter"

// Map is an insertion ordered key/value map; keys have to be comparable.
// Unlike Go builtin map, iteration order is the order keys were first put.
type Map struct {
	keys   []interface{}
	index  map[interface{}]int
	values []interface{}
}

// NewMap creates an empty ordered map
func NewMap() *Map {
	return &Map{index: make(map[interface{}]int)}
}

// MapOf creates an ordered map from alternating key, value arguments
func MapOf(pairs ...interface{}) *Map {
	ret := NewMap()
	for i := 0; i+1 < len(pairs); i += 2 {
		ret.Put(pairs[i], pairs[i+1])
	}
	return ret
}

// Put sets value under key, appending the key on first use
func (m *Map) Put(key, value interface{}) {
	if pos, ok := m.index[key]; ok {
		m.values[pos] = value
		return
	}
	m.index[key] = len(m.keys)
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

// Get returns a value for supplied key
func (m *Map) Get(key interface{}) (interface{}, bool) {
	pos, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.values[pos], true
}

// Value returns a value for supplied key, or nil
func (m *Map) Value(key interface{}) interface{} {
	value, _ := m.Get(key)
	return value
}

// Has returns true if key is present
func (m *Map) Has(key interface{}) bool {
	_, ok := m.index[key]
	return ok
}

// Delete removes key, preserving the order of the remaining keys
func (m *Map) Delete(key interface{}) bool {
	pos, ok := m.index[key]
	if !ok {
		return false
	}
	m.keys = append(m.keys[:pos], m.keys[pos+1:]...)
	m.values = append(m.values[:pos], m.values[pos+1:]...)
	delete(m.index, key)
	for i := pos; i < len(m.keys); i++ {
		m.index[m.keys[i]] = i
	}
	return true
}

// Len returns the number of entries
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns keys in insertion order
func (m *Map) Keys() []interface{} {
	ret := make([]interface{}, len(m.keys))
	copy(ret, m.keys)
	return ret
}

// Pairs returns an insertion ordered key/value sequence
func (m *Map) Pairs() iter.Seq2[interface{}, interface{}] {
	return func(yield func(interface{}, interface{}) bool) {
		for i, key := range m.keys {
			if !yield(key, m.values[i]) {
				return
			}
		}
	}
}
