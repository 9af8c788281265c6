package treewalk

import (
	"fmt"
	"sort"

	"github.com/viant/treewalk/collection"
)

// assocAdapter handles insertion ordered maps; patch expansion follows record
// semantics, with renamed keys taking the position of the slot they replace.
type assocAdapter struct{}

var assocMap = &assocAdapter{}

func (a *assocAdapter) Kind() Kind {
	return KindAssocMap
}

func (a *assocAdapter) Keys(container interface{}) []interface{} {
	aMap, ok := container.(*collection.Map)
	if !ok {
		return nil
	}
	return aMap.Keys()
}

func (a *assocAdapter) Value(container, key interface{}) interface{} {
	aMap, ok := container.(*collection.Map)
	if !ok {
		return nil
	}
	return aMap.Value(key)
}

// Patch builds a fresh ordered map, expanding replacements in place of the
// slots they change; changes addressing keys absent from the original are
// appended after, ordered by their textual form for determinism.
func (a *assocAdapter) Patch(container interface{}, changes Changes) (interface{}, error) {
	aMap, ok := container.(*collection.Map)
	if !ok {
		return nil, fmt.Errorf("unsupported associative container: %T", container)
	}
	result := collection.NewMap()
	for _, key := range aMap.Keys() {
		change, ok := changes[key]
		if !ok {
			result.Put(key, aMap.Value(key))
			continue
		}
		expandEntry(result, key, change)
	}
	var extra []interface{}
	for key := range changes {
		if !aMap.Has(key) {
			extra = append(extra, key)
		}
	}
	sort.Slice(extra, func(i, j int) bool {
		return fmt.Sprint(extra[i]) < fmt.Sprint(extra[j])
	})
	for _, key := range extra {
		expandEntry(result, key, changes[key])
	}
	return result, nil
}

func expandEntry(dest *collection.Map, key, value interface{}) {
	replacement, ok := value.(*Replacement)
	if !ok {
		dest.Put(key, value)
		return
	}
	for _, item := range replacement.Items {
		if pair, ok := item.(*KeyValue); ok {
			dest.Put(pair.Key, pair.Value)
			continue
		}
		dest.Put(key, item)
	}
}
