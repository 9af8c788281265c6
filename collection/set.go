package collection

// Set is an unordered membership collection of comparable values
type Set struct {
	items map[interface{}]struct{}
}

// NewSet creates a set with supplied items
func NewSet(items ...interface{}) *Set {
	ret := &Set{items: make(map[interface{}]struct{}, len(items))}
	for _, item := range items {
		ret.Add(item)
	}
	return ret
}

// Add adds an item
func (s *Set) Add(item interface{}) {
	s.items[item] = struct{}{}
}

// Has returns true if item is present
func (s *Set) Has(item interface{}) bool {
	_, ok := s.items[item]
	return ok
}

// Delete removes an item
func (s *Set) Delete(item interface{}) bool {
	if _, ok := s.items[item]; !ok {
		return false
	}
	delete(s.items, item)
	return true
}

// Len returns the number of items
func (s *Set) Len() int {
	return len(s.items)
}

// Values returns set items in unspecified order
func (s *Set) Values() []interface{} {
	ret := make([]interface{}, 0, len(s.items))
	for item := range s.items {
		ret = append(ret, item)
	}
	return ret
}
