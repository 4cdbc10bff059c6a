package nbtx

import (
	"errors"
	"fmt"
)

// Status classifies the outcome of a fallible NBTx operation. It mirrors
// nbtx_status from the reference implementation: the reference sets a
// process-wide errno on failure, but every exported function here returns
// the status alongside its value instead, so callers never need to consult
// hidden state.
type Status int

const (
	// StatusOK indicates success.
	StatusOK Status = iota
	// StatusError is a generic parse, structural, or serialization failure.
	StatusError
	// StatusOutOfMemory indicates an allocation failure.
	StatusOutOfMemory
	// StatusIO indicates a failure reading or writing the underlying stream.
	StatusIO
	// StatusCompression indicates a zlib/gzip compression or decompression failure.
	StatusCompression
)

// String renders the status the way nbtx_error_to_string renders nbtx_status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "Ok"
	case StatusError:
		return "Error"
	case StatusOutOfMemory:
		return "OutOfMemory"
	case StatusIO:
		return "Io"
	case StatusCompression:
		return "Compression"
	default:
		return "Unknown"
	}
}

// Error is the structured error type surfaced at the package boundary. It
// carries the failing Status plus a human-readable Context, and wraps the
// underlying cause when one exists.
type Error struct {
	Status  Status
	Context string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("nbtx: %s: %s: %v", e.Status, e.Context, e.Cause)
	}
	return fmt.Sprintf("nbtx: %s: %s", e.Status, e.Context)
}

// Unwrap exposes the wrapped cause for errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// wrapErr builds an *Error, mirroring the teacher's WrapError helper but
// always producing a non-nil error since it is used to construct primary
// failures, not just annotate an existing one.
func wrapErr(status Status, context string, cause error) error {
	return &Error{Status: status, Context: context, Cause: cause}
}

// StatusOf extracts the Status carried by err, defaulting to StatusError for
// any error that did not originate from this package (so callers can always
// treat a non-nil error as diagnosable).
func StatusOf(err error) Status {
	if err == nil {
		return StatusOK
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return StatusError
}
