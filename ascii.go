package nbtx

import (
	"fmt"
	"strings"
)

// BraceStyle controls where the opening brace of a container node's body
// is placed (spec.md §4.5, §9 open question 2).
type BraceStyle int

const (
	// BraceSameLine keeps the `{` on its own line directly under the
	// header, matching the reference's only observably emitted layout.
	BraceSameLine BraceStyle = iota + 1
	// BraceOwnLine appends the `{` to the header line itself. The
	// reference declares this option but never observably emits it;
	// this port implements it per spec.md's open question 2 instruction
	// to "implement both alternatives."
	BraceOwnLine
)

// ByteArrayRadix controls the base used to print ByteArray elements
// (spec.md §4.5, §9 open question 2).
type ByteArrayRadix int

const (
	// RadixHex prints each byte as two hex digits.
	RadixHex ByteArrayRadix = iota + 1
	// RadixDec prints each byte as an unsigned decimal number, matching
	// the reference's only observably emitted radix.
	RadixDec
)

// Style configures the ASCII pretty-printer (spec.md §4.5).
type Style struct {
	Brace     BraceStyle
	ByteArray ByteArrayRadix
	Spaces    int
}

// DefaultStyle mirrors NBTX_DEFAULT_STYLE: same-line braces, hex byte
// arrays, two spaces per indent level.
var DefaultStyle = Style{Brace: BraceSameLine, ByteArray: RadixHex, Spaces: 2}

// DumpASCII renders tree as a human-readable, NUL-free text dump (spec.md
// §4.5, §6.3). Each node emits one line of the form
// `TAG_<Kind>("<name>"): <value>`; container nodes additionally emit a
// brace-delimited block of their children at depth+1. A String node whose
// payload is nil is a format error (spec.md §4.5 "A string payload of
// null is Error").
func DumpASCII(tree *Node, style Style) (string, error) {
	if tree == nil {
		return "", wrapErr(StatusError, "dumping ascii", fmt.Errorf("tree is nil"))
	}

	var b strings.Builder
	if err := dumpNode(&b, tree, 0, style); err != nil {
		return "", err
	}
	return b.String(), nil
}

func dumpNode(b *strings.Builder, n *Node, depth int, style Style) error {
	indent(b, depth, style.Spaces)

	switch n.Kind {
	case KindByte:
		fmt.Fprintf(b, "TAG_Byte(\"%s\"): %d\n", safeName(n), n.Byte)
	case KindUByte:
		fmt.Fprintf(b, "TAG_UByte(\"%s\"): %d\n", safeName(n), n.UByte)
	case KindShort:
		fmt.Fprintf(b, "TAG_Short(\"%s\"): %d\n", safeName(n), n.Short)
	case KindUShort:
		fmt.Fprintf(b, "TAG_UShort(\"%s\"): %d\n", safeName(n), n.UShort)
	case KindInt:
		fmt.Fprintf(b, "TAG_Int(\"%s\"): %d\n", safeName(n), n.Int)
	case KindUInt:
		fmt.Fprintf(b, "TAG_UInt(\"%s\"): %d\n", safeName(n), n.UInt)
	case KindLong:
		fmt.Fprintf(b, "TAG_Long(\"%s\"): %d\n", safeName(n), n.Long)
	case KindULong:
		fmt.Fprintf(b, "TAG_ULong(\"%s\"): %d\n", safeName(n), n.ULong)
	case KindFloat:
		fmt.Fprintf(b, "TAG_Float(\"%s\"): %f\n", safeName(n), n.Float)
	case KindDouble:
		fmt.Fprintf(b, "TAG_Double(\"%s\"): %f\n", safeName(n), n.Double)
	case KindByteArray:
		fmt.Fprintf(b, "TAG_ByteArray(\"%s\"): %s\n", safeName(n), dumpByteArray(n.ByteArray, style.ByteArray))
	case KindString:
		if n.String == nil {
			return wrapErr(StatusError, "dumping ascii", fmt.Errorf("string payload is nil"))
		}
		fmt.Fprintf(b, "TAG_String(\"%s\"): %s\n", safeName(n), string(n.String))
	case KindList:
		fmt.Fprintf(b, "TAG_List(\"%s\") [%s]", safeName(n), TypeName(n.ElemKind))
		if err := dumpContainerBody(b, n.Children, depth, style); err != nil {
			return err
		}
	case KindCompound:
		fmt.Fprintf(b, "TAG_Compound(\"%s\")", safeName(n))
		if err := dumpContainerBody(b, n.Children, depth, style); err != nil {
			return err
		}
	default:
		return wrapErr(StatusError, "dumping ascii", fmt.Errorf("invalid tag kind %v", n.Kind))
	}

	return nil
}

// dumpContainerBody writes the header's line terminator and brace block
// for a List or Compound node. The caller has already written the header
// text (without a trailing newline) for the BraceOwnLine case to append
// the brace to.
func dumpContainerBody(b *strings.Builder, children []*Node, depth int, style Style) error {
	switch style.Brace {
	case BraceOwnLine:
		b.WriteString(" {\n")
	default: // BraceSameLine
		b.WriteString("\n")
		indent(b, depth, style.Spaces)
		b.WriteString("{\n")
	}

	for _, child := range children {
		if err := dumpNode(b, child, depth+1, style); err != nil {
			return err
		}
	}

	indent(b, depth, style.Spaces)
	b.WriteString("}\n")
	return nil
}

func dumpByteArray(data []byte, radix ByteArrayRadix) string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, v := range data {
		if radix == RadixHex {
			fmt.Fprintf(&b, "%02x ", v)
		} else {
			fmt.Fprintf(&b, "%d ", v)
		}
	}
	b.WriteString("]")
	return b.String()
}

func safeName(n *Node) string {
	if n.Name == nil {
		return "<null>"
	}
	return *n.Name
}

func indent(b *strings.Builder, depth, spaces int) {
	if depth <= 0 || spaces <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", depth*spaces))
}
