package treewalk

import (
	"reflect"

	"github.com/viant/xunsafe"
)

// refKey is a comparable reference identity proxy
type refKey struct {
	rType reflect.Type
	ptr   uintptr
	len   int
}

// identityKey returns a comparable identity proxy for a node: reference kinds
// map to their pointer, comparable scalars to their value, non comparable
// value types to the data word of their interface box. Empty slices of one
// type share the runtime zero size allocation, so they collapse to a single
// identity; they are interchangeable anyway, both having no elements to
// rewrite.
func identityKey(node interface{}) interface{} {
	if node == nil {
		return nil
	}
	v := reflect.ValueOf(node)
	switch v.Kind() {
	case reflect.Slice:
		return refKey{rType: v.Type(), ptr: v.Pointer(), len: v.Len()}
	case reflect.Map, reflect.Ptr, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return refKey{rType: v.Type(), ptr: v.Pointer()}
	}
	if !v.Comparable() {
		return refKey{rType: v.Type(), ptr: uintptr(xunsafe.AsPointer(node)), len: -1}
	}
	return node
}

// identical reports whether two nodes share identity
func identical(a, b interface{}) bool {
	return identityKey(a) == identityKey(b)
}
