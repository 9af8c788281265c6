package selector

import (
	"fmt"

	"github.com/viant/tagly/format/text"
	"github.com/viant/treewalk"
)

// Select resolves a path expression against root using adapter dispatch; a
// string key missing verbatim on a record hop is retried with case format
// normalization, so `userName` finds a `UserName` struct field.
func Select(root interface{}, expr string) (interface{}, error) {
	keys, err := Parse(expr)
	if err != nil {
		return nil, err
	}
	node := root
	for _, key := range keys {
		value, err := valueAt(node, key)
		if err != nil {
			return nil, fmt.Errorf("failed to select %v at %v, %v", expr, key, err)
		}
		node = value
	}
	return node, nil
}

func valueAt(node, key interface{}) (interface{}, error) {
	adapter := treewalk.ResolveAdapter(node)
	if adapter == nil {
		return nil, fmt.Errorf("unsupported container: %T", node)
	}
	value := adapter.Value(node, key)
	if value != nil {
		return value, nil
	}
	name, ok := key.(string)
	if !ok {
		return value, nil
	}
	for _, candidate := range adapter.Keys(node) {
		candidateName, ok := candidate.(string)
		if !ok {
			continue
		}
		if candidateName == name { //present, with nil value
			return value, nil
		}
		if normalized(candidateName) == normalized(name) {
			return adapter.Value(node, candidate), nil
		}
	}
	return value, nil
}

// normalized converts a key to lower camel for case insensitive matching
func normalized(name string) string {
	caseFormat := text.DetectCaseFormat(name)
	if !caseFormat.IsDefined() {
		caseFormat = text.CaseFormatUpperCamel
	}
	return caseFormat.Format(name, text.CaseFormatLowerCamel)
}
