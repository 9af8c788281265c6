// Package collection provides the container types complementing Go builtins
// in the traversal node model: an insertion ordered Map, an unordered Set and
// a generic thread-safe SyncMap.
package collection
