// Package selector provides path expression access over the traversal node
// model, resolving expressions like `items[2].name` through adapter dispatch.
package selector
