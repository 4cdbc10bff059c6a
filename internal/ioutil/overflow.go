package ioutil

import "fmt"

// Length-prefix bounds for the three NBTx wire fields that carry a
// signed-integer length (spec.md §4.1): ByteArray (i32), String (i16), and
// List count (i32). Centralizing the range checks here keeps the
// overflow/underflow guard logic grounded in one place for the parser and
// serializer alike, the way the teacher centralizes its chunk/attribute
// size guards in a single overflow-checking helper file.

// CheckByteArrayLen validates a parsed ByteArray length (signed 32-bit,
// must be >= 0).
func CheckByteArrayLen(n int32) error {
	if n < 0 {
		return fmt.Errorf("byte array length %d is negative", n)
	}
	return nil
}

// CheckStringLen validates a parsed String length (signed 16-bit, must be
// >= 0).
func CheckStringLen(n int16) error {
	if n < 0 {
		return fmt.Errorf("string length %d is negative", n)
	}
	return nil
}

// CheckListCount validates a parsed List element count (signed 32-bit,
// must be >= 0).
func CheckListCount(n int32) error {
	if n < 0 {
		return fmt.Errorf("list count %d is negative", n)
	}
	return nil
}

// FitsInt16 reports whether n fits in a signed 16-bit length prefix, the
// bound the serializer enforces when writing a String payload.
func FitsInt16(n int) bool {
	return n >= 0 && n <= 0x7FFF
}

// FitsInt32 reports whether n fits in a signed 32-bit length prefix, the
// bound the serializer enforces when writing a ByteArray payload or a List
// element count.
func FitsInt32(n int) bool {
	return n >= 0 && n <= 0x7FFFFFFF
}
