package nbtx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDumpASCIIBasicShape(t *testing.T) {
	tree := NewCompound("root")
	tree.Children = append(tree.Children, &Node{Kind: KindInt, Name: strPtr("x"), Int: 42})

	out, err := DumpASCII(tree, DefaultStyle)
	require.NoError(t, err)
	require.Contains(t, out, `TAG_Compound("root")`)
	require.Contains(t, out, `TAG_Int("x"): 42`)
	require.Contains(t, out, "{")
	require.Contains(t, out, "}")
}

func TestDumpASCIINilTree(t *testing.T) {
	_, err := DumpASCII(nil, DefaultStyle)
	require.Error(t, err)
}

func TestDumpASCIINilStringPayloadIsError(t *testing.T) {
	tree := &Node{Kind: KindString, Name: strPtr("s"), String: nil}
	_, err := DumpASCII(tree, DefaultStyle)
	require.Error(t, err)
}

func TestDumpASCIIByteArrayRadix(t *testing.T) {
	tree := &Node{Kind: KindByteArray, Name: strPtr("b"), ByteArray: []byte{255, 16}}

	hexStyle := DefaultStyle
	hexStyle.ByteArray = RadixHex
	out, err := DumpASCII(tree, hexStyle)
	require.NoError(t, err)
	require.Contains(t, out, "ff")
	require.Contains(t, out, "10")

	decStyle := DefaultStyle
	decStyle.ByteArray = RadixDec
	out, err = DumpASCII(tree, decStyle)
	require.NoError(t, err)
	require.Contains(t, out, "255")
	require.Contains(t, out, "16")
}

func TestDumpASCIIBraceStyle(t *testing.T) {
	tree := NewCompound("c")

	sameLine := DefaultStyle
	sameLine.Brace = BraceSameLine
	out, err := DumpASCII(tree, sameLine)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Equal(t, "{", strings.TrimSpace(lines[1]))

	ownLine := DefaultStyle
	ownLine.Brace = BraceOwnLine
	out, err = DumpASCII(tree, ownLine)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(strings.Split(out, "\n")[0], `TAG_Compound("c") {`))
}

func TestDumpASCIIUnnamedNode(t *testing.T) {
	tree := &Node{Kind: KindByte, Name: nil, Byte: 1}
	out, err := DumpASCII(tree, DefaultStyle)
	require.NoError(t, err)
	require.Contains(t, out, `TAG_Byte("<null>"): 1`)
}
