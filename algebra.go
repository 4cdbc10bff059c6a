package nbtx

import (
	"bytes"
	"math"
	"strings"
)

// floatEpsilon is the absolute tolerance Eq uses for Float/Double
// comparison (spec.md §3 invariant 5, §9 open question 1). It is
// inadequate for large magnitudes and overly strict for small ones; this
// is implemented exactly as the reference specifies, not "fixed", per the
// open question's own instruction to document and test it as-specified.
const floatEpsilon = 1e-6

func floatsClose(a, b float64) bool {
	return math.Abs(a-b) <= floatEpsilon
}

// Eq reports whether a and b are structurally identical: same kind, same
// name (nil-aware), same payload, and for containers, equal length with
// pairwise-equal children in order (spec.md §4.6 "Equality"). A List's
// declared ElemKind is not itself compared — only its children are, same
// as the reference implementation.
func Eq(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	if !namesEqual(a.Name, b.Name) {
		return false
	}

	switch a.Kind {
	case KindByte:
		return a.Byte == b.Byte
	case KindUByte:
		return a.UByte == b.UByte
	case KindShort:
		return a.Short == b.Short
	case KindUShort:
		return a.UShort == b.UShort
	case KindInt:
		return a.Int == b.Int
	case KindUInt:
		return a.UInt == b.UInt
	case KindLong:
		return a.Long == b.Long
	case KindULong:
		return a.ULong == b.ULong
	case KindFloat:
		return floatsClose(float64(a.Float), float64(b.Float))
	case KindDouble:
		return floatsClose(a.Double, b.Double)
	case KindByteArray:
		return bytes.Equal(a.ByteArray, b.ByteArray)
	case KindString:
		return bytes.Equal(a.String, b.String)
	case KindList, KindCompound:
		if len(a.Children) != len(b.Children) {
			return false
		}
		for i := range a.Children {
			if !Eq(a.Children[i], b.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Clone returns a deep copy of tree: a new name, a copy of any variable
// payload, and recursively cloned children. Returns nil for a nil input
// (spec.md §4.6 "Clone", §8 "Clone fidelity").
func Clone(tree *Node) *Node {
	if tree == nil {
		return nil
	}

	ret := &Node{
		Kind:     tree.Kind,
		ElemKind: tree.ElemKind,
		Byte:     tree.Byte,
		UByte:    tree.UByte,
		Short:    tree.Short,
		UShort:   tree.UShort,
		Int:      tree.Int,
		UInt:     tree.UInt,
		Long:     tree.Long,
		ULong:    tree.ULong,
		Float:    tree.Float,
		Double:   tree.Double,
	}

	if tree.Name != nil {
		ret.Name = strPtr(*tree.Name)
	}
	if tree.ByteArray != nil {
		ret.ByteArray = append([]byte(nil), tree.ByteArray...)
	}
	if tree.String != nil {
		ret.String = append([]byte(nil), tree.String...)
	}
	if tree.Children != nil {
		ret.Children = make([]*Node, len(tree.Children))
		for i, child := range tree.Children {
			ret.Children[i] = Clone(child)
		}
	}

	return ret
}

// Visitor is called once per node during Map. Returning false stops the
// traversal early.
type Visitor func(n *Node) bool

// Map performs a pre-order traversal of tree — the node itself, then its
// Compound/List children in order, recursing into each — calling visit for
// every node until it returns false or the tree is exhausted. Map returns
// false iff the traversal was stopped early by the visitor (spec.md §4.6
// "Map").
func Map(tree *Node, visit Visitor) bool {
	if tree == nil {
		return true
	}
	if !visit(tree) {
		return false
	}
	for _, child := range tree.Children {
		if !Map(child, visit) {
			return false
		}
	}
	return true
}

// Predicate decides whether a node should be kept by Filter/FilterInPlace
// or matched by Find.
type Predicate func(n *Node) bool

// Filter returns a newly allocated tree containing a clone of every node
// the predicate accepts; a rejected node is pruned along with its
// descendants. An empty surviving container is still returned as an empty
// container, but a predicate that rejects the root yields nil (spec.md
// §4.6 "Filter").
func Filter(tree *Node, keep Predicate) *Node {
	if tree == nil || !keep(tree) {
		return nil
	}

	ret := Clone(tree)
	ret.Children = nil

	for _, child := range tree.Children {
		if filtered := Filter(child, keep); filtered != nil {
			ret.Children = append(ret.Children, filtered)
		}
	}

	return ret
}

// FilterInPlace mutates tree so that every node failing the predicate is
// dropped along with its descendants; surviving containers are recursively
// filtered. Returns the (possibly still-rooted) tree, or nil if the root
// itself was rejected (spec.md §4.6 "Filter-in-place"). Unlike the
// reference's manual nbtx_free walk, dropped subtrees here are simply
// unreferenced and left for the garbage collector.
func FilterInPlace(tree *Node, keep Predicate) *Node {
	if tree == nil || !keep(tree) {
		return nil
	}

	if len(tree.Children) == 0 {
		return tree
	}

	original := tree.Children
	survivors := original[:0]
	for _, child := range original {
		if kept := FilterInPlace(child, keep); kept != nil {
			survivors = append(survivors, kept)
		}
	}
	for i := len(survivors); i < len(original); i++ {
		original[i] = nil
	}
	tree.Children = survivors
	return tree
}

// Find returns the first node (pre-order) for which the predicate holds,
// or nil if none match (spec.md §4.6 "Find").
func Find(tree *Node, match Predicate) *Node {
	var found *Node
	Map(tree, func(n *Node) bool {
		if match(n) {
			found = n
			return false
		}
		return true
	})
	return found
}

// FindByName returns the first node (pre-order) with the given name. A nil
// name matches the first unnamed node (spec.md §4.6 "Find-by-name").
func FindByName(tree *Node, name *string) *Node {
	return Find(tree, func(n *Node) bool {
		return namesEqual(n.Name, name)
	})
}

// FindByPath interprets path as dot-separated segments: the first segment
// is matched against tree's own name (not a child's — the root's name is
// segment zero), and each subsequent segment is matched against a child's
// name after descending into a container. Empty segments match unnamed
// nodes. When a segment matches more than one sibling, each is tried in
// order and the first whose remaining path also resolves wins — a match
// that dead-ends deeper in the tree does not prevent trying the next
// same-named sibling (spec.md §4.6 "Find-by-path", §8 scenario S4).
func FindByPath(tree *Node, path string) *Node {
	if tree == nil {
		return nil
	}

	head, rest, hasRest := strings.Cut(path, ".")
	if !segmentMatches(tree, head) {
		return nil
	}
	if !hasRest {
		return tree
	}
	if !tree.Kind.isContainer() {
		return nil
	}

	for _, child := range tree.Children {
		if found := FindByPath(child, rest); found != nil {
			return found
		}
	}
	return nil
}

func segmentMatches(n *Node, seg string) bool {
	if seg == "" {
		return n.Name == nil || *n.Name == ""
	}
	return n.Name != nil && *n.Name == seg
}

// Size returns the total node count including internal container nodes: 1
// for a leaf, 1 + the sum of children's sizes for a container, 0 for a nil
// tree (spec.md §4.6 "Size", §8 "Size consistency").
func Size(tree *Node) int {
	if tree == nil {
		return 0
	}
	total := 1
	for _, child := range tree.Children {
		total += Size(child)
	}
	return total
}

// ListItem returns the nth (0-indexed) child of a List or Compound node,
// or nil if out of range. This dispatches explicitly on Kind (spec.md §9
// open question 3), rather than relying on List and Compound sharing a
// memory layout the way the reference's list_item does.
func ListItem(n *Node, index int) *Node {
	if n == nil || !n.Kind.isContainer() {
		return nil
	}
	if index < 0 || index >= len(n.Children) {
		return nil
	}
	return n.Children[index]
}
