package nbtx

import (
	"encoding/binary"
	"fmt"
	"math"
)

// reader is a bounds-checked cursor over a borrowed byte slice. Scalar
// reads do not allocate; bytes is the one method that allocates, copying
// the requested run out of the borrowed buffer so that the parsed node
// owns its payload (spec.md §4.1, §5).
type reader struct {
	buf []byte // remaining unread bytes.
}

func newReader(b []byte) *reader {
	return &reader{buf: b}
}

// remaining reports how many unread bytes are left.
func (r *reader) remaining() int {
	return len(r.buf)
}

// take advances the cursor by n bytes and returns them, or fails with
// StatusError if fewer than n bytes remain (spec.md §4.1: "underflow...
// fails with ParseError").
func (r *reader) take(n int) ([]byte, error) {
	if len(r.buf) < n {
		return nil, wrapErr(StatusError, "truncated input",
			fmt.Errorf("need %d bytes, have %d", n, len(r.buf)))
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	return b, nil
}

func (r *reader) u8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) i8() (int8, error) {
	v, err := r.u8()
	return int8(v), err
}

func (r *reader) u16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) i16() (int16, error) {
	v, err := r.u16()
	return int16(v), err
}

func (r *reader) u32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *reader) i32() (int32, error) {
	v, err := r.u32()
	return int32(v), err
}

func (r *reader) u64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *reader) i64() (int64, error) {
	v, err := r.u64()
	return int64(v), err
}

func (r *reader) f32() (float32, error) {
	v, err := r.u32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *reader) f64() (float64, error) {
	v, err := r.u64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// bytes reads and returns n raw bytes, copied out of the input so the
// resulting Node payload does not alias the caller's buffer (spec.md §3
// invariant 4: payloads are owned exclusively by the node).
func (r *reader) bytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}
