package treewalk

import (
	"fmt"
	"reflect"
	"time"

	"github.com/viant/treewalk/collection"
)

// Kind represents a composite node shape
type Kind int

const (
	//KindOpaque denotes a leaf with no adapter
	KindOpaque Kind = iota
	//KindSequence denotes a slice shaped node
	KindSequence
	//KindAssocMap denotes an insertion ordered map node
	KindAssocMap
	//KindRecord denotes a string keyed map node
	KindRecord
	//KindStruct denotes a struct pointer node
	KindStruct
)

type (
	//Changes holds per key child replacements produced by a traversal or
	//supplied to a patch
	Changes map[interface{}]interface{}

	//Adapter represents a shape specific strategy for enumerating and
	//patching a composite node; Patch is copy on write and never mutates
	//the supplied container.
	Adapter interface {
		Kind() Kind
		Keys(container interface{}) []interface{}
		Value(container interface{}, key interface{}) interface{}
		Patch(container interface{}, changes Changes) (interface{}, error)
	}

	//Patcher applies changes to a container with the adapter governing it
	Patcher func(container interface{}, changes Changes) (interface{}, error)
)

var timePtrType = reflect.TypeOf(&time.Time{})

// ResolveAdapter returns the adapter governing supplied node, or nil when the
// node is opaque. Shape detection order: sequence, associative map, record,
// struct record. The adapter resolved for a node stays in effect for that
// node entire processing.
func ResolveAdapter(node interface{}) Adapter {
	if node == nil {
		return nil
	}
	switch node.(type) {
	case []interface{}:
		return sequence
	case *collection.Map:
		return assocMap
	case map[string]interface{}:
		return record
	case *collection.Set: //unordered collection stays opaque
		return nil
	case []byte, *time.Time:
		return nil
	}
	v := reflect.ValueOf(node)
	switch v.Kind() {
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return nil
		}
		return sequence
	case reflect.Map:
		if v.IsNil() {
			return nil
		}
		rType := v.Type()
		if rType.Key().Kind() == reflect.String && rType.Elem().Kind() == reflect.Interface {
			return record
		}
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
		if v.Type().Elem().Kind() == reflect.Struct && v.Type() != timePtrType {
			return structs
		}
	}
	return nil
}

// KindOf returns the shape kind of supplied node
func KindOf(node interface{}) Kind {
	if adapter := ResolveAdapter(node); adapter != nil {
		return adapter.Kind()
	}
	return KindOpaque
}

// Value reads a single key from a composite container with its adapter; it
// fails fast when no adapter governs the container.
func Value(container, key interface{}) (interface{}, error) {
	adapter := ResolveAdapter(container)
	if adapter == nil {
		return nil, fmt.Errorf("unsupported container: %T", container)
	}
	return adapter.Value(container, key), nil
}

// DefaultSkip returns true for unordered collection nodes, which are never
// descended into nor visited
func DefaultSkip(node interface{}) bool {
	_, ok := node.(*collection.Set)
	return ok
}

// DefaultFilter returns true only for record shaped nodes; sequences and
// associative maps are still descended into, but only records receive
// callbacks unless a caller overrides the filter.
func DefaultFilter(node interface{}) bool {
	kind := KindOf(node)
	return kind == KindRecord || kind == KindStruct
}
