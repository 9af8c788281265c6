package treewalk

// arena assigns stable integer handles to nodes by identity, letting the
// lookup relations run over handle to handle tables instead of relying on
// node values being hashable.
type arena struct {
	handles map[interface{}]int
	nodes   []interface{}
}

func newArena() *arena {
	return &arena{handles: make(map[interface{}]int)}
}

// handle returns the node handle, assigning one on first encounter
func (a *arena) handle(node interface{}) int {
	key := identityKey(node)
	if handle, ok := a.handles[key]; ok {
		return handle
	}
	handle := len(a.nodes)
	a.handles[key] = handle
	a.nodes = append(a.nodes, node)
	return handle
}

// find returns the node handle if one was assigned
func (a *arena) find(node interface{}) (int, bool) {
	handle, ok := a.handles[identityKey(node)]
	return handle, ok
}

// node returns the node registered under handle
func (a *arena) node(handle int) interface{} {
	return a.nodes[handle]
}
