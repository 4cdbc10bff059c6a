// Package nbtx implements the NBTx tagged binary tree format, an extended
// variant of Minecraft's NBT format that adds unsigned integer tag kinds.
// It parses a compressed or uncompressed byte stream into a typed,
// recursively-structured tree, serializes such a tree back to bytes, and
// renders it as an ASCII dump for debugging.
package nbtx

// Kind identifies the payload variant carried by a Node. The numeric values
// follow enum order, not the wire encoding; kindToWire and wireToKind
// translate between a Kind and its on-wire type byte.
type Kind uint8

const (
	// KindInvalid is an internal sentinel. It must never appear in a
	// well-formed tree or escape the public surface. Its two legitimate
	// uses are standing for the TAG_End wire byte in wireToKind and, as a
	// List's ElemKind, marking a list with no declared element kind (see
	// putList).
	KindInvalid Kind = iota
	KindByte
	KindUByte
	KindShort
	KindUShort
	KindInt
	KindUInt
	KindLong
	KindULong
	KindFloat
	KindDouble
	KindByteArray
	KindString
	KindList
	KindCompound
)

// kindToWire maps a Kind to its NBTx wire byte (spec.md §6.1). End (0) and the
// extended unsigned kinds (11-14) do not sit contiguously with the signed
// kinds in enum order, so Kind cannot be cast directly onto the wire; this
// table is the single source of truth for the mapping in both directions.
var kindToWire = map[Kind]uint8{
	KindByte:      1,
	KindShort:     2,
	KindInt:       3,
	KindLong:      4,
	KindFloat:     5,
	KindDouble:    6,
	KindByteArray: 7,
	KindString:    8,
	KindList:      9,
	KindCompound:  10,
	KindUByte:     11,
	KindUShort:    12,
	KindUInt:      13,
	KindULong:     14,
}

var wireToKind = func() map[uint8]Kind {
	m := make(map[uint8]Kind, len(kindToWire)+1)
	m[0] = KindInvalid // TAG_End sentinel; never a node's own Kind.
	for k, w := range kindToWire {
		m[w] = k
	}
	return m
}()

// kindNames backs TypeName and the ASCII pretty-printer.
var kindNames = map[Kind]string{
	KindInvalid:   "TAG_Invalid",
	KindByte:      "TAG_Byte",
	KindUByte:     "TAG_UByte",
	KindShort:     "TAG_Short",
	KindUShort:    "TAG_UShort",
	KindInt:       "TAG_Int",
	KindUInt:      "TAG_UInt",
	KindLong:      "TAG_Long",
	KindULong:     "TAG_ULong",
	KindFloat:     "TAG_Float",
	KindDouble:    "TAG_Double",
	KindByteArray: "TAG_ByteArray",
	KindString:    "TAG_String",
	KindList:      "TAG_List",
	KindCompound:  "TAG_Compound",
}

// TypeName returns the print-friendly name of a Kind, mirroring
// nbtx_type_to_string.
func TypeName(k Kind) string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "TAG_Unknown"
}

// IsSimple reports whether k is one of the fixed-size scalar kinds (Byte
// through Double). Put<Kind> uses this to decide whether replacing an
// existing Compound child can overwrite the payload in place rather than
// reallocating the node (spec.md §4.6 "Put-by-kind primitives").
func (k Kind) IsSimple() bool {
	return k >= KindByte && k <= KindDouble
}

// isContainer reports whether k holds child nodes.
func (k Kind) isContainer() bool {
	return k == KindList || k == KindCompound
}

// Node is a single element of an NBTx tree: a Kind, an optional Name, and a
// Kind-dispatched payload. Exactly one of the payload fields below is
// meaningful for a given Kind; callers should switch on Kind before reading
// a payload field, mirroring the reference's tagged union.
//
// Name ownership, payload ownership, and list-homogeneity are the
// invariants spec.md §3 calls out; Go's garbage collector and this
// package's constructors/mutators (NewList, NewCompound, Put<Kind>) are
// jointly responsible for upholding them — there is no separate
// destructor, unlike the reference's nbtx_free.
type Node struct {
	Kind Kind
	Name *string // nil means "no name" (spec.md §3 invariant 3).

	Byte   int8
	UByte  uint8
	Short  int16
	UShort uint16
	Int    int32
	UInt   uint32
	Long   int64
	ULong  uint64
	Float  float32
	Double float64

	ByteArray []byte
	String    []byte // raw bytes, NUL-terminator implicit per spec.md §4.1/§9 point 4.

	// ElemKind is meaningful only when Kind == KindList: the declared kind
	// shared by every entry in Children, preserved even for an empty list
	// (spec.md §3 invariant 1, §9 "Lists and compounds share a container
	// primitive").
	ElemKind Kind
	Children []*Node // meaningful only when Kind is KindList or KindCompound.
}

// NewList creates a new, empty List node with the given name and declared
// element kind, mirroring nbtx_new_list.
func NewList(name string, elemKind Kind) *Node {
	return &Node{
		Kind:     KindList,
		Name:     strPtr(name),
		ElemKind: elemKind,
		Children: nil,
	}
}

// NewCompound creates a new, empty Compound node with the given name,
// mirroring nbtx_new_compound.
func NewCompound(name string) *Node {
	return &Node{
		Kind:     KindCompound,
		Name:     strPtr(name),
		Children: nil,
	}
}

func strPtr(s string) *string {
	return &s
}

// namesEqual implements the null-aware name comparison spec.md §4.6
// Equality calls for: two nil names are equal, a nil and non-nil name are
// never equal, and non-nil names compare by content.
func namesEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
