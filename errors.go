package streams

import (
	"errors"
	"fmt"
)

// Error represents a stream operation error with context about the operation
// that failed. It wraps the underlying error for error chaining support.
type Error struct {
	// Op is the operation that failed (e.g., "copy", "window.seek")
	Op string

	// Err is the underlying error
	Err error
}

// Error implements the error interface by providing a formatted error message.
func (e *Error) Error() string {
	return fmt.Sprintf("streams.%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error for error chaining support.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a new Error with the given operation and underlying error.
func NewError(op string, err error) *Error {
	return &Error{
		Op:  op,
		Err: err,
	}
}

// Sentinel errors for stream operation failures.
// These can be used with errors.Is() for error checking.
var (
	// ErrOutOfBounds indicates an offset, length, position, or seek target
	// falls outside the valid window or the underlying stream's extent
	ErrOutOfBounds = errors.New("streams: out of bounds")

	// ErrReadOnlyViolation indicates a mutating operation was attempted on a
	// read-only stream
	ErrReadOnlyViolation = errors.New("streams: read-only stream")

	// ErrUnsupported indicates an operation requires a capability the
	// underlying stream does not provide
	ErrUnsupported = errors.New("streams: operation not supported")

	// ErrUnexpectedEOF indicates the source was exhausted before the
	// requested byte count could be obtained
	ErrUnexpectedEOF = errors.New("streams: unexpected end of stream")

	// ErrClosed indicates an operation was attempted on a closed stream
	ErrClosed = errors.New("streams: stream closed")
)

// IsOutOfBounds checks if an error indicates an out-of-bounds offset, length,
// position, or seek target.
func IsOutOfBounds(err error) bool {
	return errors.Is(err, ErrOutOfBounds)
}

// IsReadOnlyViolation checks if an error indicates a rejected mutating
// operation on a read-only stream.
func IsReadOnlyViolation(err error) bool {
	return errors.Is(err, ErrReadOnlyViolation)
}

// IsUnsupported checks if an error indicates a missing stream capability.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}

// IsUnexpectedEOF checks if an error indicates a premature end of stream.
func IsUnexpectedEOF(err error) bool {
	return errors.Is(err, ErrUnexpectedEOF)
}

// IsClosed checks if an error indicates use of a closed stream.
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed)
}
