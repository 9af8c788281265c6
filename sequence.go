package treewalk

import (
	"reflect"
)

// sequenceAdapter handles slices; changes are applied positionally, so a
// single slot can vanish or fan out into many elements, shifting all
// subsequent positions. A KeyValue key carries no positional meaning and is
// dropped, only its value is kept.
type sequenceAdapter struct{}

var sequence = &sequenceAdapter{}

var sliceOfInterface = reflect.TypeOf([]interface{}{})

func (a *sequenceAdapter) Kind() Kind {
	return KindSequence
}

func (a *sequenceAdapter) Keys(container interface{}) []interface{} {
	size := 0
	if actual, ok := container.([]interface{}); ok {
		size = len(actual)
	} else {
		size = reflect.ValueOf(container).Len()
	}
	var keys = make([]interface{}, size)
	for i := range keys {
		keys[i] = i
	}
	return keys
}

func (a *sequenceAdapter) Value(container, key interface{}) interface{} {
	index, ok := key.(int)
	if !ok {
		return nil
	}
	if actual, ok := container.([]interface{}); ok {
		if index < 0 || index >= len(actual) {
			return nil
		}
		return actual[index]
	}
	v := reflect.ValueOf(container)
	if index < 0 || index >= v.Len() {
		return nil
	}
	return v.Index(index).Interface()
}

// Patch expands changes positionally into a new slice; the original slice
// type is preserved when every element remains assignable, otherwise the
// result falls back to []interface{}.
func (a *sequenceAdapter) Patch(container interface{}, changes Changes) (interface{}, error) {
	v := reflect.ValueOf(container)
	size := v.Len()
	var result = make([]interface{}, 0, size)
	for i := 0; i < size; i++ {
		change, ok := changes[i]
		if !ok {
			result = append(result, v.Index(i).Interface())
			continue
		}
		replacement, ok := change.(*Replacement)
		if !ok {
			result = append(result, change)
			continue
		}
		for _, item := range replacement.Items {
			if pair, ok := item.(*KeyValue); ok {
				item = pair.Value
			}
			result = append(result, item)
		}
	}
	if rType := v.Type(); rType != sliceOfInterface {
		if typed, ok := retype(rType, result); ok {
			return typed, nil
		}
	}
	return result, nil
}

// fanIn rebuilds container as a sequence of the replacement items, keeping the
// sequence wrapper; a replacement returned for a sequence node describes its
// new elements, not a change for the parent slot.
func (a *sequenceAdapter) fanIn(container interface{}, replacement *Replacement) interface{} {
	var result = make([]interface{}, 0, len(replacement.Items))
	for _, item := range replacement.Items {
		if pair, ok := item.(*KeyValue); ok {
			item = pair.Value
		}
		result = append(result, item)
	}
	if rType := reflect.TypeOf(container); rType != sliceOfInterface {
		if typed, ok := retype(rType, result); ok {
			return typed
		}
	}
	return result
}

// retype rebuilds items as rType when every element remains assignable
func retype(rType reflect.Type, items []interface{}) (interface{}, bool) {
	elemType := rType.Elem()
	ret := reflect.MakeSlice(rType, 0, len(items))
	for _, item := range items {
		if item == nil {
			switch elemType.Kind() {
			case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
				ret = reflect.Append(ret, reflect.Zero(elemType))
				continue
			}
			return nil, false
		}
		value := reflect.ValueOf(item)
		if !value.Type().AssignableTo(elemType) {
			return nil, false
		}
		ret = reflect.Append(ret, value)
	}
	return ret.Interface(), true
}
