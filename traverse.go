package treewalk

type (
	//Visitor configures traversal callbacks; every field is optional, default
	//skip and filter predicates are used when omitted. When Lookup is set it
	//is populated with parent links and identity transitions during the walk.
	Visitor struct {
		Enter  EnterFunc
		Merge  MergeFunc
		Leave  LeaveFunc
		Skip   Predicate
		Filter Predicate
		Lookup *Lookup
	}

	//EnterFunc runs before descending into a node; returning SkipChildren
	//suppresses descent into the node children.
	EnterFunc func(node interface{}, ancestors, path []interface{}) (Outcome, error)

	//MergeFunc replaces default patching; it receives the post traversal per
	//key changes (nil when no child changed) and a patcher bound to the node
	//adapter. A non nil result becomes the new container, a nil result falls
	//back to the default patch.
	MergeFunc func(node interface{}, changes Changes, patch Patcher, ancestors, path []interface{}) (interface{}, error)

	//LeaveFunc runs after descent and merge; a non nil result overrides the
	//node entirely.
	LeaveFunc func(node interface{}, ancestors, path []interface{}) (interface{}, error)

	//Predicate gates traversal behavior per node
	Predicate func(node interface{}) bool

	walker struct {
		enter  EnterFunc
		merge  MergeFunc
		leave  LeaveFunc
		skip   Predicate
		filter Predicate
		lookup *Lookup
	}
)

// Traverse walks node depth first, invoking visitor callbacks and rebuilding
// changed containers copy on write, bottom up; an unchanged subtree is
// returned by the same reference it came in with. A callback error aborts the
// walk and propagates unchanged.
func Traverse(node interface{}, visitor *Visitor) (interface{}, error) {
	return TraverseWith(node, visitor, nil, nil)
}

// TraverseWith resumes a traversal with pre seeded ancestors and path.
// Callbacks observe both slices in place; they have to copy them when
// retaining past the callback return.
func TraverseWith(node interface{}, visitor *Visitor, ancestors, path []interface{}) (interface{}, error) {
	if visitor == nil {
		visitor = &Visitor{}
	}
	w := &walker{
		enter:  visitor.Enter,
		merge:  visitor.Merge,
		leave:  visitor.Leave,
		skip:   visitor.Skip,
		filter: visitor.Filter,
		lookup: visitor.Lookup,
	}
	if w.skip == nil {
		w.skip = DefaultSkip
	}
	return w.traverse(node, ancestors, path)
}

func (w *walker) traverse(node interface{}, ancestors, path []interface{}) (interface{}, error) {
	adapter := ResolveAdapter(node)
	if w.lookup != nil && adapter != nil && len(ancestors) > 0 {
		w.lookup.SetParent(node, ancestors[len(ancestors)-1])
	}
	if node == nil || w.skip(node) {
		return node, nil
	}
	callback := w.callback(node, adapter)
	if callback && w.enter != nil {
		outcome, err := w.enter(node, ancestors, path)
		if err != nil {
			return nil, err
		}
		if outcome == SkipChildren {
			return w.conclude(node, adapter, callback, ancestors, path)
		}
	}
	var merge MergeFunc
	if callback {
		merge = w.merge
	}
	result, err := w.traverseChildren(node, adapter, ancestors, path, merge)
	if err != nil {
		return nil, err
	}
	return w.conclude(result, adapter, callback, ancestors, path)
}

// callback applies the filter; the default gates on record shaped nodes,
// reusing the adapter already resolved for the node instead of inspecting
// the shape again
func (w *walker) callback(node interface{}, adapter Adapter) bool {
	if w.filter != nil {
		return w.filter(node)
	}
	if adapter == nil {
		return false
	}
	kind := adapter.Kind()
	return kind == KindRecord || kind == KindStruct
}

// conclude applies the leave callback to the structurally rebuilt node and
// records the identity transition when the result overrides it. A replacement
// returned for a sequence node fans its items in as the sequence new elements;
// on any other node a replacement propagates to the parent slot patch.
func (w *walker) conclude(rebuilt interface{}, adapter Adapter, callback bool, ancestors, path []interface{}) (interface{}, error) {
	if !callback || w.leave == nil {
		return rebuilt, nil
	}
	overridden, err := w.leave(rebuilt, ancestors, path)
	if err != nil {
		return nil, err
	}
	if overridden == nil {
		return rebuilt, nil
	}
	if replacement, ok := overridden.(*Replacement); ok && adapter != nil && adapter.Kind() == KindSequence {
		overridden = sequence.fanIn(rebuilt, replacement)
	}
	if w.lookup != nil && !identical(overridden, rebuilt) {
		w.lookup.SetCurrent(rebuilt, overridden)
	}
	return overridden, nil
}

func (w *walker) traverseChildren(container interface{}, adapter Adapter, ancestors, path []interface{}, merge MergeFunc) (interface{}, error) {
	if adapter == nil { //opaque leaf
		return container, nil
	}
	var changes Changes
	ancestors = append(ancestors, container)
	for _, key := range adapter.Keys(container) {
		child := adapter.Value(container, key)
		result, err := w.traverse(child, ancestors, append(path, key))
		if err != nil {
			return nil, err
		}
		if !identical(result, child) {
			if changes == nil {
				changes = Changes{}
			}
			changes[key] = result
		}
	}
	ancestors = ancestors[:len(ancestors)-1]
	result := container
	var err error
	switch {
	case merge != nil:
		merged, mergeErr := merge(container, changes, adapter.Patch, ancestors, path)
		if mergeErr != nil {
			return nil, mergeErr
		}
		if merged != nil {
			result = merged
		} else if len(changes) > 0 {
			result, err = adapter.Patch(container, changes)
		}
	case len(changes) > 0:
		result, err = adapter.Patch(container, changes)
	}
	if err != nil {
		return nil, err
	}
	if w.lookup != nil && !identical(result, container) {
		w.lookup.SetCurrent(container, result)
	}
	return result, nil
}
