package treewalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_CurrentOriginalTransitivity(t *testing.T) {
	a := map[string]interface{}{"v": 1}
	b := map[string]interface{}{"v": 2}
	c := map[string]interface{}{"v": 3}
	lookup := NewLookup()
	lookup.SetCurrent(a, b)
	lookup.SetCurrent(b, c)
	assert.True(t, identical(lookup.Current(a), c))
	assert.True(t, identical(lookup.Original(c), a))
	assert.True(t, identical(lookup.Original(b), a))
	//unknown nodes resolve to themselves
	other := map[string]interface{}{}
	assert.True(t, identical(lookup.Current(other), other))
	assert.True(t, identical(lookup.Original(other), other))
}

func TestLookup_ParentInheritanceOnReplace(t *testing.T) {
	parent := map[string]interface{}{"p": 1}
	a := map[string]interface{}{"v": 1}
	b := map[string]interface{}{"v": 2}
	lookup := NewLookup()
	lookup.SetParent(a, parent)
	lookup.SetCurrent(a, b)
	assert.True(t, identical(lookup.Parent(b), parent))
	//last write wins
	reparented := map[string]interface{}{"p": 2}
	lookup.SetParent(b, reparented)
	assert.True(t, identical(lookup.Parent(b), reparented))
}

func TestLookup_AcrossTwoPasses(t *testing.T) {
	a := map[string]interface{}{"v": 1}
	root := map[string]interface{}{"n": a}
	lookup := NewLookup()
	rewrite := func(from, to interface{}) *Visitor {
		return &Visitor{
			Leave: func(node interface{}, ancestors, path []interface{}) (interface{}, error) {
				if identical(node, from) {
					return to, nil
				}
				return nil, nil
			},
			Lookup: lookup,
		}
	}
	b := map[string]interface{}{"v": 2}
	pass1, err := Traverse(root, rewrite(a, b))
	require.Nil(t, err)
	c := map[string]interface{}{"v": 3}
	pass2, err := Traverse(pass1, rewrite(b, c))
	require.Nil(t, err)

	assert.True(t, identical(lookup.Current(a), c))
	assert.True(t, identical(lookup.Original(c), a))
	//ancestor hops resolve to the current incarnation of the rewritten root
	assert.True(t, identical(lookup.Ancestor(c, 1), pass2))
	assert.True(t, identical(lookup.Current(root), pass2))
}

func TestLookup_Ancestors(t *testing.T) {
	leaf := map[string]interface{}{"x": 1}
	mid := map[string]interface{}{"leaf": leaf}
	root := map[string]interface{}{"mid": mid}
	lookup := NewLookup()
	_, err := Traverse(root, &Visitor{Lookup: lookup})
	require.Nil(t, err)

	assert.True(t, identical(lookup.Parent(leaf), mid))
	assert.True(t, identical(lookup.Parent(mid), root))
	assert.Nil(t, lookup.Parent(root))

	var ancestors []interface{}
	for ancestor := range lookup.Ancestors(leaf) {
		ancestors = append(ancestors, ancestor)
	}
	require.Equal(t, 2, len(ancestors))
	assert.True(t, identical(ancestors[0], mid))
	assert.True(t, identical(ancestors[1], root))

	//the sequence is restartable
	count := 0
	for range lookup.Ancestors(leaf) {
		count++
	}
	assert.Equal(t, 2, count)

	found := lookup.FindAncestor(leaf, func(node interface{}) bool {
		return identical(node, root)
	})
	assert.True(t, identical(found, root))
	assert.Nil(t, lookup.FindAncestor(leaf, func(node interface{}) bool { return false }))
}

func TestLookup_DanglingAncestor(t *testing.T) {
	leaf := map[string]interface{}{"x": 1}
	root := map[string]interface{}{"leaf": leaf}
	lookup := NewLookup()
	_, err := Traverse(root, &Visitor{Lookup: lookup})
	require.Nil(t, err)

	assert.True(t, identical(lookup.Ancestor(leaf, 0), leaf))
	assert.True(t, identical(lookup.Ancestor(leaf, 1), root))
	assert.Nil(t, lookup.Ancestor(leaf, 2))
	assert.Nil(t, lookup.Ancestor(leaf, 5))
	assert.Nil(t, lookup.Ancestor(map[string]interface{}{}, 1))
}
