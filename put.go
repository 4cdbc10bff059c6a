package nbtx

import "fmt"

// Result is the outcome of a Put<Kind> call: the node that was added or
// modified (nil on error), and whether a new entry was inserted rather
// than an existing one being replaced (spec.md §4.6 "Put-by-kind
// primitives", §8 scenarios S5/S8/S9/S10).
type Result struct {
	Reference *Node
	Inserted  bool
}

func errResult(context string, cause error) (Result, error) {
	return Result{}, wrapErr(StatusError, context, cause)
}

// put implements the shared insert-or-replace-or-append logic for every
// Put<Kind> primitive. For a Compound, it inserts a new named child or
// replaces an existing one by name; for a List, it appends (name is
// ignored) provided kind matches the list's declared ElemKind. build
// constructs the new node's kind-specific payload fields only; Kind and
// Name are filled in by put.
func put(container *Node, name string, kind Kind, build func(*Node)) (Result, error) {
	if container == nil {
		return errResult("put", fmt.Errorf("container is nil"))
	}

	switch container.Kind {
	case KindCompound:
		return putCompound(container, name, kind, build)
	case KindList:
		return putList(container, kind, build)
	default:
		return errResult("put", fmt.Errorf("container kind %v is not List or Compound", container.Kind))
	}
}

func putCompound(container *Node, name string, kind Kind, build func(*Node)) (Result, error) {
	var existing *Node
	existingIndex := -1
	for i, child := range container.Children {
		if child.Name != nil && *child.Name == name {
			existing = child
			existingIndex = i
			break
		}
	}

	if existing != nil && existing.Kind.IsSimple() && kind.IsSimple() {
		// Overwrite in place: same node, same slot, payload and kind updated.
		*existing = Node{Kind: kind, Name: existing.Name}
		build(existing)
		return Result{Reference: existing, Inserted: false}, nil
	}

	fresh := &Node{Kind: kind, Name: strPtr(name)}
	build(fresh)

	if existingIndex >= 0 {
		container.Children[existingIndex] = fresh
		return Result{Reference: fresh, Inserted: false}, nil
	}

	container.Children = append(container.Children, fresh)
	return Result{Reference: fresh, Inserted: true}, nil
}

func putList(list *Node, kind Kind, build func(*Node)) (Result, error) {
	if list.ElemKind == KindInvalid {
		list.ElemKind = kind
	} else if list.ElemKind != kind {
		return errResult("put", fmt.Errorf("list element kind is %v, cannot append %v", list.ElemKind, kind))
	}

	fresh := &Node{Kind: kind}
	build(fresh)

	list.Children = append(list.Children, fresh)
	return Result{Reference: fresh, Inserted: true}, nil
}

// PutByte inserts or replaces a Byte child of a Compound, or appends to a
// List.
func PutByte(container *Node, name string, v int8) (Result, error) {
	return put(container, name, KindByte, func(n *Node) { n.Byte = v })
}

// PutUByte inserts or replaces a UByte child of a Compound, or appends to
// a List.
func PutUByte(container *Node, name string, v uint8) (Result, error) {
	return put(container, name, KindUByte, func(n *Node) { n.UByte = v })
}

// PutShort inserts or replaces a Short child of a Compound, or appends to
// a List.
func PutShort(container *Node, name string, v int16) (Result, error) {
	return put(container, name, KindShort, func(n *Node) { n.Short = v })
}

// PutUShort inserts or replaces a UShort child of a Compound, or appends
// to a List.
func PutUShort(container *Node, name string, v uint16) (Result, error) {
	return put(container, name, KindUShort, func(n *Node) { n.UShort = v })
}

// PutInt inserts or replaces an Int child of a Compound, or appends to a
// List.
func PutInt(container *Node, name string, v int32) (Result, error) {
	return put(container, name, KindInt, func(n *Node) { n.Int = v })
}

// PutUInt inserts or replaces a UInt child of a Compound, or appends to a
// List.
func PutUInt(container *Node, name string, v uint32) (Result, error) {
	return put(container, name, KindUInt, func(n *Node) { n.UInt = v })
}

// PutLong inserts or replaces a Long child of a Compound, or appends to a
// List.
func PutLong(container *Node, name string, v int64) (Result, error) {
	return put(container, name, KindLong, func(n *Node) { n.Long = v })
}

// PutULong inserts or replaces a ULong child of a Compound, or appends to
// a List.
func PutULong(container *Node, name string, v uint64) (Result, error) {
	return put(container, name, KindULong, func(n *Node) { n.ULong = v })
}

// PutFloat inserts or replaces a Float child of a Compound, or appends to
// a List.
func PutFloat(container *Node, name string, v float32) (Result, error) {
	return put(container, name, KindFloat, func(n *Node) { n.Float = v })
}

// PutDouble inserts or replaces a Double child of a Compound, or appends
// to a List.
func PutDouble(container *Node, name string, v float64) (Result, error) {
	return put(container, name, KindDouble, func(n *Node) { n.Double = v })
}

// PutByteArray inserts or replaces a ByteArray child of a Compound, or
// appends to a List. data is copied so the resulting node owns its
// payload (spec.md §4.6 "For byte-arrays and strings, payloads are
// copied").
func PutByteArray(container *Node, name string, data []byte) (Result, error) {
	return put(container, name, KindByteArray, func(n *Node) {
		n.ByteArray = append([]byte(nil), data...)
	})
}

// PutString inserts or replaces a String child of a Compound, or appends
// to a List. s is copied so the resulting node owns its payload.
func PutString(container *Node, name string, s []byte) (Result, error) {
	return put(container, name, KindString, func(n *Node) {
		n.String = append([]byte(nil), s...)
	})
}

// PutList inserts or replaces a List child of a Compound, or appends to a
// List. A new List node is created under name with the supplied list's
// ElemKind; the supplied list's Children slice is shared with it, not
// cloned.
func PutList(container *Node, name string, list *Node) (Result, error) {
	if list == nil || list.Kind != KindList {
		return errResult("put list", fmt.Errorf("value is not a List node"))
	}
	return put(container, name, KindList, func(n *Node) {
		n.ElemKind = list.ElemKind
		n.Children = list.Children
	})
}

// PutCompound inserts or replaces a Compound child of a Compound, or
// appends to a List. A new Compound node is created under name; the
// supplied compound's Children slice is shared with it, not cloned.
func PutCompound(container *Node, name string, compound *Node) (Result, error) {
	if compound == nil || compound.Kind != KindCompound {
		return errResult("put compound", fmt.Errorf("value is not a Compound node"))
	}
	return put(container, name, KindCompound, func(n *Node) {
		n.Children = compound.Children
	})
}
