package nbtx

import (
	"fmt"

	ioutilx "github.com/scigolib/nbtx/internal/ioutil"
)

// Parse decodes an uncompressed NBTx byte stream into a tree. The root is
// read as a named tag (spec.md §4.2): a kind byte, then — unless that kind
// is the TAG_End sentinel, which is never a valid root — a length-prefixed
// name and a kind-dispatched payload. Any kind is accepted as root, though
// the canonical root is a Compound.
func Parse(data []byte) (*Node, error) {
	r := newReader(data)

	kindWire, err := r.u8()
	if err != nil {
		return nil, wrapErr(StatusError, "reading root kind", err)
	}
	if kindWire == 0 {
		return nil, wrapErr(StatusError, "parsing root", fmt.Errorf("root kind is TAG_End"))
	}

	kind, ok := wireToKind[kindWire]
	if !ok || kind == KindInvalid {
		return nil, wrapErr(StatusError, "parsing root", fmt.Errorf("unknown tag kind %d", kindWire))
	}

	name, err := readName(r)
	if err != nil {
		return nil, wrapErr(StatusError, "reading root name", err)
	}

	node, err := parseUnnamedTag(kind, r)
	if err != nil {
		return nil, err
	}
	node.Name = name
	return node, nil
}

// readName reads a length-prefixed (signed 16-bit) raw byte string, used
// for tag names (spec.md §4.1 "Length prefixes").
func readName(r *reader) (*string, error) {
	n, err := r.i16()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("name length %d is negative", n)
	}
	b, err := r.bytes(int(n))
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// parseUnnamedTag reads the payload for kind, leaving Name unset (the
// caller fills it in, or leaves it nil for list elements).
func parseUnnamedTag(kind Kind, r *reader) (*Node, error) {
	node := &Node{Kind: kind}

	switch kind {
	case KindByte:
		v, err := r.i8()
		if err != nil {
			return nil, wrapErr(StatusError, "reading byte payload", err)
		}
		node.Byte = v
	case KindUByte:
		v, err := r.u8()
		if err != nil {
			return nil, wrapErr(StatusError, "reading ubyte payload", err)
		}
		node.UByte = v
	case KindShort:
		v, err := r.i16()
		if err != nil {
			return nil, wrapErr(StatusError, "reading short payload", err)
		}
		node.Short = v
	case KindUShort:
		v, err := r.u16()
		if err != nil {
			return nil, wrapErr(StatusError, "reading ushort payload", err)
		}
		node.UShort = v
	case KindInt:
		v, err := r.i32()
		if err != nil {
			return nil, wrapErr(StatusError, "reading int payload", err)
		}
		node.Int = v
	case KindUInt:
		v, err := r.u32()
		if err != nil {
			return nil, wrapErr(StatusError, "reading uint payload", err)
		}
		node.UInt = v
	case KindLong:
		v, err := r.i64()
		if err != nil {
			return nil, wrapErr(StatusError, "reading long payload", err)
		}
		node.Long = v
	case KindULong:
		v, err := r.u64()
		if err != nil {
			return nil, wrapErr(StatusError, "reading ulong payload", err)
		}
		node.ULong = v
	case KindFloat:
		v, err := r.f32()
		if err != nil {
			return nil, wrapErr(StatusError, "reading float payload", err)
		}
		node.Float = v
	case KindDouble:
		v, err := r.f64()
		if err != nil {
			return nil, wrapErr(StatusError, "reading double payload", err)
		}
		node.Double = v
	case KindByteArray:
		n, err := r.i32()
		if err != nil {
			return nil, wrapErr(StatusError, "reading byte array length", err)
		}
		if err := ioutilx.CheckByteArrayLen(n); err != nil {
			return nil, wrapErr(StatusError, "reading byte array length", err)
		}
		data, err := r.bytes(int(n))
		if err != nil {
			return nil, wrapErr(StatusError, "reading byte array payload", err)
		}
		node.ByteArray = data
	case KindString:
		n, err := r.i16()
		if err != nil {
			return nil, wrapErr(StatusError, "reading string length", err)
		}
		if err := ioutilx.CheckStringLen(n); err != nil {
			return nil, wrapErr(StatusError, "reading string length", err)
		}
		data, err := r.bytes(int(n))
		if err != nil {
			return nil, wrapErr(StatusError, "reading string payload", err)
		}
		node.String = data
	case KindList:
		elemKind, children, err := parseListPayload(r)
		if err != nil {
			return nil, err
		}
		node.ElemKind = elemKind
		node.Children = children
	case KindCompound:
		children, err := parseCompoundPayload(r)
		if err != nil {
			return nil, err
		}
		node.Children = children
	default:
		return nil, wrapErr(StatusError, "parsing tag", fmt.Errorf("unexpected tag kind %d", kind))
	}

	return node, nil
}

// parseCompoundPayload reads `{ kind; if kind==0 stop; name; payload }...`
// (spec.md §4.2, §4.7 "Compound loop").
func parseCompoundPayload(r *reader) ([]*Node, error) {
	var children []*Node

	for {
		kindWire, err := r.u8()
		if err != nil {
			return nil, wrapErr(StatusError, "reading compound entry kind", err)
		}
		if kindWire == 0 {
			break
		}

		kind, ok := wireToKind[kindWire]
		if !ok || kind == KindInvalid {
			return nil, wrapErr(StatusError, "reading compound entry",
				fmt.Errorf("unknown tag kind %d inside compound payload", kindWire))
		}

		name, err := readName(r)
		if err != nil {
			return nil, wrapErr(StatusError, "reading compound entry name", err)
		}

		child, err := parseUnnamedTag(kind, r)
		if err != nil {
			return nil, err
		}
		child.Name = name

		children = append(children, child)
	}

	return children, nil
}

// parseListPayload reads `{ element-kind; count }` followed by count
// unnamed children of that element-kind (spec.md §4.2, §4.7 "List loop").
// An element-kind byte of 0 (the TAG_End wire value) is tolerated as a
// legacy encoding of an empty-or-compound list and treated as Compound
// (spec.md §4.2 "legacy tolerance").
func parseListPayload(r *reader) (Kind, []*Node, error) {
	elemWire, err := r.u8()
	if err != nil {
		return KindInvalid, nil, wrapErr(StatusError, "reading list element kind", err)
	}

	count, err := r.i32()
	if err != nil {
		return KindInvalid, nil, wrapErr(StatusError, "reading list count", err)
	}
	if err := ioutilx.CheckListCount(count); err != nil {
		return KindInvalid, nil, wrapErr(StatusError, "reading list count", err)
	}

	var elemKind Kind
	if elemWire == 0 {
		elemKind = KindCompound
	} else {
		ek, ok := wireToKind[elemWire]
		if !ok || ek == KindInvalid {
			return KindInvalid, nil, wrapErr(StatusError, "reading list element kind",
				fmt.Errorf("unknown tag kind %d", elemWire))
		}
		elemKind = ek
	}

	var children []*Node
	for i := int32(0); i < count; i++ {
		child, err := parseUnnamedTag(elemKind, r)
		if err != nil {
			return KindInvalid, nil, err
		}
		children = append(children, child)
	}

	return elemKind, children, nil
}
