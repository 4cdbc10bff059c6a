package nbtx

import (
	"fmt"
	"io"
	"os"
)

// ParseFile reads all of r and parses it, auto-detecting a gzip or zlib
// compression envelope (spec.md §5, §11).
func ParseFile(r io.Reader) (*Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapErr(StatusIO, "reading input", err)
	}
	return ParseCompressed(data)
}

// ParsePath opens path and parses its contents via ParseFile.
func ParsePath(path string) (*Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, wrapErr(StatusIO, fmt.Sprintf("opening %s", path), err)
	}
	defer f.Close()
	return ParseFile(f)
}

// DumpFile serializes and compresses tree with strategy, writing the
// result to w (spec.md §5, §11).
func DumpFile(w io.Writer, tree *Node, strategy CompressionStrategy) error {
	data, err := DumpCompressed(tree, strategy)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return wrapErr(StatusIO, "writing output", err)
	}
	return nil
}

// DumpPath serializes and compresses tree with strategy, writing the
// result to a newly created (or truncated) file at path.
func DumpPath(path string, tree *Node, strategy CompressionStrategy) error {
	f, err := os.Create(path)
	if err != nil {
		return wrapErr(StatusIO, fmt.Sprintf("creating %s", path), err)
	}
	defer f.Close()
	return DumpFile(f, tree, strategy)
}
