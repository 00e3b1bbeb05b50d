// Package window exposes a contiguous sub-range of an underlying stream as an
// independent stream with its own zero-based position. This file provides the
// functional options for configuring a Window at construction time.
package window

// Option configures a Window during construction.
type Option func(*config)

type config struct {
	offset   int64
	length   int64
	readOnly bool
	owns     bool
}

// WithOffset sets the start of the window within the underlying stream.
// Default is 0. Offsets are ignored (forced to 0) when the underlying stream
// is not seekable, because the window cannot be positioned within it.
func WithOffset(offset int64) Option {
	return func(c *config) {
		c.offset = offset
	}
}

// WithLength sets the size of the window in bytes.
// Default is 0, meaning the window spans from the offset to the end of the
// underlying stream.
func WithLength(length int64) Option {
	return func(c *config) {
		c.length = length
	}
}

// ReadOnly makes the window reject every mutating operation (Write, Sync,
// Truncate) with streams.ErrReadOnlyViolation. Reads and seeks are unaffected.
func ReadOnly() Option {
	return func(c *config) {
		c.readOnly = true
	}
}

// TakeOwnership transfers ownership of the underlying stream to the window:
// closing the window also closes the underlying stream. Without this option
// the caller retains responsibility for closing it.
func TakeOwnership() Option {
	return func(c *config) {
		c.owns = true
	}
}
