package nbtx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func buildNestedTree() *Node {
	root := NewCompound("")
	a := NewCompound("a")
	b := &Node{Kind: KindInt, Name: strPtr("b"), Int: 7}
	a.Children = append(a.Children, b)
	root.Children = append(root.Children, a)
	return root
}

func TestFindByPathNested(t *testing.T) {
	// S4: root Compound { Compound a { Int b = 7 } }, find_by_path(".a.b").
	tree := buildNestedTree()

	found := FindByPath(tree, ".a.b")
	require.NotNil(t, found)
	require.Equal(t, KindInt, found.Kind)
	require.Equal(t, int32(7), found.Int)
}

func TestFindByPathBacktracksAcrossSiblings(t *testing.T) {
	root := NewCompound("")
	deadEnd := NewCompound("a")
	deadEnd.Children = append(deadEnd.Children, &Node{Kind: KindInt, Name: strPtr("other"), Int: 1})

	match := NewCompound("a")
	match.Children = append(match.Children, &Node{Kind: KindInt, Name: strPtr("b"), Int: 99})

	root.Children = append(root.Children, deadEnd, match)

	found := FindByPath(root, ".a.b")
	require.NotNil(t, found)
	require.Equal(t, int32(99), found.Int)
}

func TestFindByPathNoMatch(t *testing.T) {
	tree := buildNestedTree()
	require.Nil(t, FindByPath(tree, ".a.missing"))
	require.Nil(t, FindByPath(tree, ".missing.b"))
}

func TestEqIdenticalTrees(t *testing.T) {
	a := buildNestedTree()
	b := Clone(a)
	require.True(t, Eq(a, b))
}

func TestEqDetectsDifference(t *testing.T) {
	a := buildNestedTree()
	b := Clone(a)
	b.Children[0].Children[0].Int = 8
	require.False(t, Eq(a, b))
}

func TestEqNilHandling(t *testing.T) {
	require.True(t, Eq(nil, nil))
	require.False(t, Eq(nil, NewCompound("")))
	require.False(t, Eq(NewCompound(""), nil))
}

func TestEqFloatEpsilon(t *testing.T) {
	a := &Node{Kind: KindDouble, Double: 1.0}
	b := &Node{Kind: KindDouble, Double: 1.0 + 1e-9}
	require.True(t, Eq(a, b))

	c := &Node{Kind: KindDouble, Double: 1.001}
	require.False(t, Eq(a, c))
}

func TestCloneFidelityAndIndependence(t *testing.T) {
	original := buildNestedTree()
	original.Children[0].Children[0].Int = 7

	clone := Clone(original)
	require.True(t, Eq(original, clone))

	clone.Children[0].Children[0].Int = 42
	require.Equal(t, int32(7), original.Children[0].Children[0].Int)
}

func TestCloneNil(t *testing.T) {
	require.Nil(t, Clone(nil))
}

func TestMapPreOrderAndEarlyStop(t *testing.T) {
	tree := buildNestedTree()

	var visited []Kind
	ok := Map(tree, func(n *Node) bool {
		visited = append(visited, n.Kind)
		return true
	})
	require.True(t, ok)
	require.Equal(t, []Kind{KindCompound, KindCompound, KindInt}, visited)

	var visitCount int
	ok = Map(tree, func(n *Node) bool {
		visitCount++
		return false
	})
	require.False(t, ok)
	require.Equal(t, 1, visitCount)
}

func TestFilterPrunesSubtree(t *testing.T) {
	tree := buildNestedTree()

	filtered := Filter(tree, func(n *Node) bool {
		return n.Kind != KindInt
	})
	require.NotNil(t, filtered)
	require.Equal(t, 2, Size(filtered))
}

func TestFilterRejectsRoot(t *testing.T) {
	tree := buildNestedTree()
	require.Nil(t, Filter(tree, func(n *Node) bool { return false }))
}

func TestFilterInPlaceMutatesTree(t *testing.T) {
	tree := buildNestedTree()

	result := FilterInPlace(tree, func(n *Node) bool {
		return n.Kind != KindInt
	})
	require.Same(t, tree, result)
	require.Equal(t, 2, Size(tree))
}

func TestFindByName(t *testing.T) {
	tree := buildNestedTree()
	a := FindByName(tree, strPtr("a"))
	require.NotNil(t, a)
	require.Equal(t, KindCompound, a.Kind)

	require.Nil(t, FindByName(tree, strPtr("nope")))
}

func TestSizeConsistency(t *testing.T) {
	require.Equal(t, 0, Size(nil))
	require.Equal(t, 1, Size(NewCompound("")))
	require.Equal(t, 3, Size(buildNestedTree()))
}

func TestListItemOutOfRange(t *testing.T) {
	list := NewList("l", KindByte)
	list.Children = []*Node{{Kind: KindByte, Byte: 1}}

	require.NotNil(t, ListItem(list, 0))
	require.Nil(t, ListItem(list, 1))
	require.Nil(t, ListItem(list, -1))
	require.Nil(t, ListItem(nil, 0))
}
