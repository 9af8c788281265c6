// Package treewalk implements a data structure agnostic, depth first tree
// traversal with immutable, copy on write transformation. It walks arbitrary
// nested values (string keyed maps, slices, ordered maps, struct pointers),
// invokes caller supplied callbacks on node entry and exit, rebuilds changed
// containers bottom up with structural sharing, and optionally maintains an
// identity Lookup answering parent and rewrite history queries across one or
// more transformation passes.
package treewalk
