package treewalk

import "iter"

// Lookup tracks parent links and identity transitions across the lifetime of
// one or more rewrite passes; traversal populates it as a side channel when
// supplied on a Visitor, and it answers ancestry and history queries after, or
// between, passes. A Lookup assumes a single writer; it must not be shared by
// concurrent traversals.
type Lookup struct {
	arena     *arena
	parents   map[int]int
	currents  map[int]int
	originals map[int]int
}

// NewLookup creates a lookup
func NewLookup() *Lookup {
	return &Lookup{
		arena:     newArena(),
		parents:   make(map[int]int),
		currents:  make(map[int]int),
		originals: make(map[int]int),
	}
}

// SetParent records the immediate parent of child; a later call for the same
// child wins, supporting nodes reparented across passes.
func (l *Lookup) SetParent(child, parent interface{}) {
	l.parents[l.arena.handle(child)] = l.arena.handle(parent)
}

// Parent returns the recorded immediate parent of node, or nil
func (l *Lookup) Parent(node interface{}) interface{} {
	handle, ok := l.arena.find(node)
	if !ok {
		return nil
	}
	parent, ok := l.parents[handle]
	if !ok {
		return nil
	}
	return l.arena.node(parent)
}

// SetCurrent records that previous has been superseded by current; it closes
// the original chain transitively and propagates the recorded parent of
// previous onto current.
func (l *Lookup) SetCurrent(previous, current interface{}) {
	prev := l.arena.handle(previous)
	curr := l.arena.handle(current)
	if prev == curr {
		return
	}
	l.currents[prev] = curr
	l.originals[curr] = l.originalHandle(prev)
	if parent, ok := l.parents[prev]; ok {
		l.parents[curr] = parent
	}
}

func (l *Lookup) originalHandle(handle int) int {
	if original, ok := l.originals[handle]; ok {
		return original
	}
	return handle
}

// Current returns the latest replacement of previous, chasing replacement
// chains, or previous itself when none was recorded
func (l *Lookup) Current(previous interface{}) interface{} {
	handle, ok := l.arena.find(previous)
	if !ok {
		return previous
	}
	//bounded by the table size to stay finite on a replacement cycle
	for i := 0; i <= len(l.currents); i++ {
		next, ok := l.currents[handle]
		if !ok || next == handle {
			break
		}
		handle = next
	}
	return l.arena.node(handle)
}

// Original returns the earliest value current descends from, or current itself
func (l *Lookup) Original(current interface{}) interface{} {
	handle, ok := l.arena.find(current)
	if !ok {
		return current
	}
	return l.arena.node(l.originalHandle(handle))
}

// Ancestor walks offset parent links from node, resolving every hop to its
// current incarnation; it returns nil past the root.
func (l *Lookup) Ancestor(node interface{}, offset int) interface{} {
	current := node
	for i := 0; i < offset; i++ {
		handle, ok := l.arena.find(current)
		if !ok {
			return nil
		}
		parent, ok := l.parents[handle]
		if !ok {
			return nil
		}
		current = l.Current(l.arena.node(parent))
	}
	return current
}

// Ancestors returns a lazy, restartable sequence of the current ancestors of
// node, nearest first; it recomputes from the lookup tables on every
// iteration, so it stays valid when the lookup mutates between uses.
func (l *Lookup) Ancestors(node interface{}) iter.Seq[interface{}] {
	return func(yield func(interface{}) bool) {
		for ancestor := l.Ancestor(node, 1); ancestor != nil; ancestor = l.Ancestor(ancestor, 1) {
			if !yield(ancestor) {
				return
			}
		}
	}
}

// FindAncestor returns the nearest ancestor of node matching predicate, or nil
func (l *Lookup) FindAncestor(node interface{}, predicate func(interface{}) bool) interface{} {
	for ancestor := range l.Ancestors(node) {
		if predicate(ancestor) {
			return ancestor
		}
	}
	return nil
}
