package nbtx

import (
	"fmt"

	ioutilx "github.com/scigolib/nbtx/internal/ioutil"
)

// Serialize encodes tree to its uncompressed NBTx binary representation,
// the inverse of Parse. The root is written as a named tag: kind byte,
// name, payload (spec.md §4.4).
func Serialize(tree *Node) ([]byte, error) {
	if tree == nil {
		return nil, wrapErr(StatusError, "serializing root", fmt.Errorf("tree is nil"))
	}

	w := newWriter()
	if err := writeTag(w, tree, true); err != nil {
		return nil, err
	}
	return w.bytes(), nil
}

// writeTag writes a single tag. When dumpType is true the kind byte and
// the name (a nil name as an empty one) are written first; list children
// are written with
// dumpType false, since the list header already carries their shared kind
// and list elements are never named (spec.md §4.4).
func writeTag(w *writer, n *Node, dumpType bool) error {
	if dumpType {
		wire, ok := kindToWire[n.Kind]
		if !ok {
			return wrapErr(StatusError, "serializing tag", fmt.Errorf("invalid tag kind %v", n.Kind))
		}
		w.u8(wire)

		if err := writeName(w, n.Name); err != nil {
			return err
		}
	}

	switch n.Kind {
	case KindByte:
		w.i8(n.Byte)
	case KindUByte:
		w.u8(n.UByte)
	case KindShort:
		w.i16(n.Short)
	case KindUShort:
		w.u16(n.UShort)
	case KindInt:
		w.i32(n.Int)
	case KindUInt:
		w.u32(n.UInt)
	case KindLong:
		w.i64(n.Long)
	case KindULong:
		w.u64(n.ULong)
	case KindFloat:
		w.f32(n.Float)
	case KindDouble:
		w.f64(n.Double)
	case KindByteArray:
		if !ioutilx.FitsInt32(len(n.ByteArray)) {
			return wrapErr(StatusError, "serializing byte array", fmt.Errorf("length %d exceeds i32 range", len(n.ByteArray)))
		}
		w.i32(int32(len(n.ByteArray)))
		w.append(n.ByteArray)
	case KindString:
		if !ioutilx.FitsInt16(len(n.String)) {
			return wrapErr(StatusError, "serializing string", fmt.Errorf("length %d exceeds i16 range", len(n.String)))
		}
		w.i16(int16(len(n.String)))
		w.append(n.String)
	case KindList:
		return writeListPayload(w, n)
	case KindCompound:
		return writeCompoundPayload(w, n)
	default:
		return wrapErr(StatusError, "serializing tag", fmt.Errorf("invalid tag kind %v", n.Kind))
	}

	return nil
}

// writeName writes a length-prefixed (signed 16-bit) raw name. A nil name
// is written as a zero-length string, since the wire format has no
// separate "no name" representation once a name block is present.
func writeName(w *writer, name *string) error {
	s := ""
	if name != nil {
		s = *name
	}
	if !ioutilx.FitsInt16(len(s)) {
		return wrapErr(StatusError, "serializing name", fmt.Errorf("name length %d exceeds i16 range", len(s)))
	}
	w.i16(int16(len(s)))
	w.append([]byte(s))
	return nil
}

// writeListPayload writes the `{ element-kind; count }` header followed by
// each child with dumpType=false (spec.md §4.4 "List"). The element-kind
// is recomputed from the children: an empty list falls back to the node's
// declared ElemKind (preserved from parsing or NewList); a non-empty list
// must be homogeneous or serialization fails.
func writeListPayload(w *writer, n *Node) error {
	elemKind, err := commonElemKind(n)
	if err != nil {
		return err
	}

	if !ioutilx.FitsInt32(len(n.Children)) {
		return wrapErr(StatusError, "serializing list", fmt.Errorf("length %d exceeds i32 range", len(n.Children)))
	}

	wire, ok := kindToWire[elemKind]
	if !ok {
		return wrapErr(StatusError, "serializing list", fmt.Errorf("invalid element kind %v", elemKind))
	}
	w.u8(wire)
	w.i32(int32(len(n.Children)))

	for _, child := range n.Children {
		if err := writeTag(w, child, false); err != nil {
			return err
		}
	}
	return nil
}

// commonElemKind returns the single kind shared by every child of a List,
// or an error if the children are heterogeneous (spec.md §4.4).
func commonElemKind(n *Node) (Kind, error) {
	if len(n.Children) == 0 {
		return n.ElemKind, nil
	}

	kind := n.Children[0].Kind
	for _, child := range n.Children[1:] {
		if child.Kind != kind {
			return KindInvalid, wrapErr(StatusError, "serializing list",
				fmt.Errorf("heterogeneous list: child kinds %v and %v", kind, child.Kind))
		}
	}
	return kind, nil
}

// writeCompoundPayload writes each named child followed by the TAG_End
// terminator byte (spec.md §4.4 "Compound payload terminates with a
// single 0 byte").
func writeCompoundPayload(w *writer, n *Node) error {
	for _, child := range n.Children {
		if err := writeTag(w, child, true); err != nil {
			return err
		}
	}
	w.u8(0)
	return nil
}
