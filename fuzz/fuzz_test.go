package fuzz

import (
	"testing"

	"github.com/scigolib/nbtx"
)

// FuzzParse is the Go-native equivalent of the reference's AFL harness: it
// asserts Parse never panics on arbitrary input, and that whatever it does
// manage to parse and re-serialize parses back to a tree Eq to the first.
func FuzzParse(f *testing.F) {
	seeds := [][]byte{
		{0x0A, 0x00, 0x00, 0x00}, // S1: minimal root
		{0x0A, 0x00, 0x05, 'h', 'e', 'l', 'l', 'o',
			0x03, 0x00, 0x01, 'x', 0x00, 0x00, 0x00, 0x2A,
			0x00}, // S2: single int
		{0x0A, 0x00, 0x00}, // S6: truncated, missing terminator
		{},
		{0x00},
		{0x0B, 0x00, 0x00, 0x2A}, // UByte root
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tree, err := nbtx.Parse(data)
		if err != nil {
			return
		}
		if tree == nil {
			t.Fatal("Parse returned nil tree with nil error")
		}

		encoded, err := nbtx.Serialize(tree)
		if err != nil {
			// A successfully parsed tree may still fail to re-serialize
			// only if it violates an invariant Parse doesn't itself check
			// (e.g. a heterogeneous list can't arise from parsing, so this
			// should not happen, but we don't assert it as a hard failure
			// to keep the corpus resilient to future relaxations).
			return
		}

		reparsed, err := nbtx.Parse(encoded)
		if err != nil {
			t.Fatalf("round-trip re-parse failed: %v", err)
		}
		if !nbtx.Eq(tree, reparsed) {
			t.Fatalf("round-trip produced a different tree")
		}
	})
}
