package treewalk

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/treewalk/collection"
	"github.com/viant/xunsafe"
)

// WalkTag names the struct tag controlling field exposure: `walk:"-"` hides a
// field from traversal, any other value renames its key.
const WalkTag = "walk"

type (
	//structAdapter handles struct pointers; keys are exported field names,
	//subject to the walk tag. Struct fields cannot be deleted nor fanned out,
	//so an empty replacement zeroes the field and a multi item replacement is
	//an error; a KeyValue retargets to another existing field.
	structAdapter struct {
		types *collection.SyncMap[reflect.Type, *structType]
	}

	structType struct {
		keys   []interface{}
		fields map[string]*xunsafe.Field
	}
)

var structs = &structAdapter{types: collection.NewSyncMap[reflect.Type, *structType]()}

func (a *structAdapter) Kind() Kind {
	return KindStruct
}

func (a *structAdapter) structType(container interface{}) *structType {
	rType := reflect.TypeOf(container).Elem()
	if ret, ok := a.types.Get(rType); ok {
		return ret
	}
	ret := &structType{fields: map[string]*xunsafe.Field{}}
	for i := 0; i < rType.NumField(); i++ {
		rField := rType.Field(i)
		if rField.PkgPath != "" { //unexported, private bookkeeping
			continue
		}
		name := rField.Name
		if tag, ok := rField.Tag.Lookup(WalkTag); ok {
			if tag == "-" {
				continue
			}
			if key := strings.Split(tag, ",")[0]; key != "" {
				name = key
			}
		}
		ret.keys = append(ret.keys, name)
		ret.fields[name] = xunsafe.NewField(rField)
	}
	a.types.Put(rType, ret)
	return ret
}

func (s *structType) lookup(name string) (*xunsafe.Field, error) {
	field, ok := s.fields[name]
	if !ok {
		return nil, fmt.Errorf("unknown field: %v", name)
	}
	return field, nil
}

func (a *structAdapter) Keys(container interface{}) []interface{} {
	return a.structType(container).keys
}

func (a *structAdapter) Value(container, key interface{}) interface{} {
	name, ok := key.(string)
	if !ok {
		return nil
	}
	field, ok := a.structType(container).fields[name]
	if !ok {
		return nil
	}
	return field.Value(xunsafe.AsPointer(container))
}

// Patch sets changes on a shallow copy of the pointed struct, returning a
// pointer to the copy; the original struct stays untouched.
func (a *structAdapter) Patch(container interface{}, changes Changes) (interface{}, error) {
	sType := a.structType(container)
	source := reflect.ValueOf(container).Elem()
	clone := reflect.New(source.Type())
	clone.Elem().Set(source)
	for key, change := range changes {
		name, ok := key.(string)
		if !ok {
			return nil, fmt.Errorf("unsupported struct key: %T, expected string", key)
		}
		if err := a.apply(sType, clone, name, change); err != nil {
			return nil, err
		}
	}
	return clone.Interface(), nil
}

func (a *structAdapter) apply(sType *structType, clone reflect.Value, name string, change interface{}) error {
	replacement, ok := change.(*Replacement)
	if !ok {
		return a.assign(sType, clone, name, change)
	}
	switch len(replacement.Items) {
	case 0: //a struct field cannot be deleted, zero it instead
		return a.assign(sType, clone, name, nil)
	case 1:
		item := replacement.Items[0]
		if pair, ok := item.(*KeyValue); ok {
			key, ok := pair.Key.(string)
			if !ok {
				return fmt.Errorf("unsupported struct key: %T, expected string", pair.Key)
			}
			return a.assign(sType, clone, key, pair.Value)
		}
		return a.assign(sType, clone, name, item)
	default:
		return fmt.Errorf("cannot fan out struct field %v into %v values", name, len(replacement.Items))
	}
}

func (a *structAdapter) assign(sType *structType, clone reflect.Value, name string, item interface{}) error {
	field, err := sType.lookup(name)
	if err != nil {
		return err
	}
	target := clone.Elem().FieldByName(field.Name)
	if item == nil {
		target.Set(reflect.Zero(target.Type()))
		return nil
	}
	value := reflect.ValueOf(item)
	if !value.Type().AssignableTo(target.Type()) {
		if !value.Type().ConvertibleTo(target.Type()) {
			return fmt.Errorf("cannot assign %T to field %v %s", item, field.Name, target.Type().String())
		}
		value = value.Convert(target.Type())
	}
	target.Set(value)
	return nil
}
