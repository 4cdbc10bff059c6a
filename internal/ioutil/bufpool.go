// Package ioutil provides the low-level scratch-buffer and bounds-checking
// helpers shared by the writer, parser, and serializer. It has no
// functionality beyond what those three callers need.
package ioutil

import "sync"

var scratchPool = sync.Pool{
	New: func() interface{} {
		return make([]byte, 0, 256)
	},
}

// GetScratch returns a byte slice of length size from the pool, growing it
// if the pooled capacity is insufficient.
func GetScratch(size int) []byte {
	buf := scratchPool.Get().([]byte)
	if cap(buf) < size {
		return make([]byte, size)
	}
	return buf[:size]
}

// ReleaseScratch returns buf to the pool for reuse.
func ReleaseScratch(buf []byte) {
	//nolint:staticcheck // SA6002: slice descriptor copy is fine for a scratch pool.
	scratchPool.Put(buf[:0])
}
