package nbtx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterScalarWrites(t *testing.T) {
	w := newWriter()
	w.i8(-1)
	w.u16(0x0102)
	w.f32(1.0)

	r := newReader(w.bytes())

	i8v, err := r.i8()
	require.NoError(t, err)
	require.Equal(t, int8(-1), i8v)

	u16v, err := r.u16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0102), u16v)

	f32v, err := r.f32()
	require.NoError(t, err)
	require.Equal(t, float32(1.0), f32v)
}

func TestWriterGrowsBeyondInitialCapacity(t *testing.T) {
	w := newWriter()
	for i := 0; i < 1000; i++ {
		w.u8(byte(i))
	}
	require.Equal(t, 1000, len(w.bytes()))
}
