package treewalk

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// recordAdapter handles string keyed maps with interface values, the engine
// generic record shape. Keys with a leading underscore are private
// bookkeeping: excluded from enumeration, carried untouched by patch.
type recordAdapter struct{}

var record = &recordAdapter{}

func (a *recordAdapter) Kind() Kind {
	return KindRecord
}

// Keys enumerates public record keys in sorted order
func (a *recordAdapter) Keys(container interface{}) []interface{} {
	var keys []string
	switch actual := container.(type) {
	case map[string]interface{}:
		for key := range actual {
			keys = append(keys, key)
		}
	default:
		v := reflect.ValueOf(container)
		for _, key := range v.MapKeys() {
			keys = append(keys, key.String())
		}
	}
	sort.Strings(keys)
	var result = make([]interface{}, 0, len(keys))
	for _, key := range keys {
		if strings.HasPrefix(key, "_") {
			continue
		}
		result = append(result, key)
	}
	return result
}

func (a *recordAdapter) Value(container, key interface{}) interface{} {
	name, ok := key.(string)
	if !ok {
		return nil
	}
	if actual, ok := container.(map[string]interface{}); ok {
		return actual[name]
	}
	value := reflect.ValueOf(container).MapIndex(reflect.ValueOf(name))
	if !value.IsValid() {
		return nil
	}
	return value.Interface()
}

// Patch builds a new record from a shallow copy of container merged with
// changes, expanding replacements; the original concrete map type is
// preserved when not the bare default.
func (a *recordAdapter) Patch(container interface{}, changes Changes) (interface{}, error) {
	merged := make(map[string]interface{})
	switch actual := container.(type) {
	case map[string]interface{}:
		for key, value := range actual {
			merged[key] = value
		}
	default:
		v := reflect.ValueOf(container)
		for _, key := range v.MapKeys() {
			merged[key.String()] = v.MapIndex(key).Interface()
		}
	}
	for key, change := range changes {
		name, err := recordKey(key)
		if err != nil {
			return nil, err
		}
		merged[name] = change
	}
	result := make(map[string]interface{}, len(merged))
	for name, value := range merged {
		replacement, ok := value.(*Replacement)
		if !ok {
			result[name] = value
			continue
		}
		for _, item := range replacement.Items {
			if pair, ok := item.(*KeyValue); ok {
				key, err := recordKey(pair.Key)
				if err != nil {
					return nil, err
				}
				result[key] = pair.Value
				continue
			}
			result[name] = item
		}
	}
	if rType := reflect.TypeOf(container); rType != reflect.TypeOf(result) {
		return namedRecord(rType, result), nil
	}
	return result, nil
}

func recordKey(key interface{}) (string, error) {
	name, ok := key.(string)
	if !ok {
		return "", fmt.Errorf("unsupported record key: %T, expected string", key)
	}
	return name, nil
}

func namedRecord(rType reflect.Type, values map[string]interface{}) interface{} {
	ret := reflect.MakeMapWithSize(rType, len(values))
	elemType := rType.Elem()
	for key, value := range values {
		item := reflect.ValueOf(value)
		if value == nil {
			item = reflect.Zero(elemType)
		}
		ret.SetMapIndex(reflect.ValueOf(key), item)
	}
	return ret.Interface()
}
