package nbtx

import (
	"encoding/binary"
	"math"

	ioutilx "github.com/scigolib/nbtx/internal/ioutil"
)

// writer is an append-only growable byte buffer with typed big-endian
// scalar append primitives, mirroring the reference's struct buffer
// (spec.md §4.3). Go's append already grows on demand; reserve exists to
// make the growth point explicit and to avoid repeated reallocation when
// the final size is known up front, matching the reference API shape.
type writer struct {
	buf []byte
}

func newWriter() *writer {
	return &writer{buf: make([]byte, 0, 64)}
}

// reserve ensures the buffer has capacity for at least n more bytes,
// doubling the existing capacity (rather than growing to the exact size
// needed) so a long run of small scalar writes stays amortized O(1) per
// write instead of reallocating and copying on every call.
func (w *writer) reserve(n int) {
	if cap(w.buf)-len(w.buf) >= n {
		return
	}
	newCap := 2*cap(w.buf) + n
	grown := make([]byte, len(w.buf), newCap)
	copy(grown, w.buf)
	w.buf = grown
}

func (w *writer) append(b []byte) {
	w.reserve(len(b))
	w.buf = append(w.buf, b...)
}

func (w *writer) u8(v uint8) {
	w.append([]byte{v})
}

func (w *writer) i8(v int8) {
	w.u8(uint8(v))
}

func (w *writer) u16(v uint16) {
	scratch := ioutilx.GetScratch(2)
	defer ioutilx.ReleaseScratch(scratch)
	binary.BigEndian.PutUint16(scratch, v)
	w.append(scratch)
}

func (w *writer) i16(v int16) {
	w.u16(uint16(v))
}

func (w *writer) u32(v uint32) {
	scratch := ioutilx.GetScratch(4)
	defer ioutilx.ReleaseScratch(scratch)
	binary.BigEndian.PutUint32(scratch, v)
	w.append(scratch)
}

func (w *writer) i32(v int32) {
	w.u32(uint32(v))
}

func (w *writer) u64(v uint64) {
	scratch := ioutilx.GetScratch(8)
	defer ioutilx.ReleaseScratch(scratch)
	binary.BigEndian.PutUint64(scratch, v)
	w.append(scratch)
}

func (w *writer) i64(v int64) {
	w.u64(uint64(v))
}

func (w *writer) f32(v float32) {
	w.u32(math.Float32bits(v))
}

func (w *writer) f64(v float64) {
	w.u64(math.Float64bits(v))
}

// bytes returns the accumulated buffer.
func (w *writer) bytes() []byte {
	return w.buf
}
