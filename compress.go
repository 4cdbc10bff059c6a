package nbtx

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"fmt"
	"io"
)

// CompressionStrategy selects the envelope DumpCompressed wraps a
// serialized tree in (spec.md §5 "Compression envelope").
type CompressionStrategy int

const (
	// StrategyGzip wraps the payload in a gzip stream (magic 0x1f 0x8b).
	StrategyGzip CompressionStrategy = iota + 1
	// StrategyZlib wraps the payload in a zlib stream (magic 0x78 0x..).
	StrategyZlib
)

// DumpCompressed serializes tree and compresses the result using the
// given strategy (spec.md §5).
func DumpCompressed(tree *Node, strategy CompressionStrategy) ([]byte, error) {
	raw, err := Serialize(tree)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	var wc io.WriteCloser

	switch strategy {
	case StrategyGzip:
		wc = gzip.NewWriter(&buf)
	case StrategyZlib:
		wc = zlib.NewWriter(&buf)
	default:
		return nil, wrapErr(StatusError, "compressing tree", fmt.Errorf("unknown compression strategy %v", strategy))
	}

	if _, err := wc.Write(raw); err != nil {
		return nil, wrapErr(StatusCompression, "compressing tree", err)
	}
	if err := wc.Close(); err != nil {
		return nil, wrapErr(StatusCompression, "compressing tree", err)
	}

	return buf.Bytes(), nil
}

// ParseCompressed sniffs data's leading bytes to detect gzip (0x1f 0x8b)
// or zlib (0x78 header) magic, decompresses accordingly, and parses the
// result. Uncompressed data is parsed directly (spec.md §5
// "Auto-detection"). Gzip's magic never collides with a bare NBTx root
// kind byte, but zlib's CMF byte (0x08 for deflate) is identical to the
// String tag's wire code, so a raw String-rooted stream can occasionally
// look like a zlib header; when that happens, decompression fails and
// this falls back to parsing data as uncompressed instead of reporting a
// spurious compression error.
func ParseCompressed(data []byte) (*Node, error) {
	switch {
	case isGzip(data):
		raw, err := decompress(func(r io.Reader) (io.ReadCloser, error) { return gzip.NewReader(r) }, data)
		if err != nil {
			return nil, wrapErr(StatusCompression, "decompressing gzip", err)
		}
		return Parse(raw)

	case isZlib(data):
		raw, err := decompress(func(r io.Reader) (io.ReadCloser, error) { return zlib.NewReader(r) }, data)
		if err != nil {
			return Parse(data)
		}
		return Parse(raw)

	default:
		return Parse(data)
	}
}

func decompress(newReader func(io.Reader) (io.ReadCloser, error), data []byte) ([]byte, error) {
	r, err := newReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return io.ReadAll(r)
}

func isGzip(data []byte) bool {
	return len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b
}

func isZlib(data []byte) bool {
	if len(data) < 2 {
		return false
	}
	// RFC 1950: CMF/FLG header, CMF low nibble is the compression method
	// (8 == deflate) and the 16-bit header must be a multiple of 31.
	cmf, flg := data[0], data[1]
	if cmf&0x0f != 8 {
		return false
	}
	return (uint16(cmf)<<8|uint16(flg))%31 == 0
}
