// Package streams defines a capability-based stream abstraction and the
// utilities shared by its consumers. A Stream is any byte-oriented resource
// that can report, per capability, whether it supports reading, writing, or
// seeking; operations invoked on a stream lacking the capability return
// ErrUnsupported rather than panicking.
//
// Provider adapters live in subpackages (see the billy package); the window
// package builds a bounded view over any Stream.
package streams

import "io"

// Stream represents an open byte-stream resource supporting basic I/O
// operations. Implementations should behave consistently with the standard
// library io interfaces they embed.
//
// Not every backing resource supports every operation. Callers that need to
// branch on capability should consult CanRead, CanWrite, and CanSeek instead
// of probing with a throwaway call.
type Stream interface {
	io.Reader
	io.Writer
	io.Seeker
	io.Closer

	// Len reports the total size of the stream in bytes.
	Len() (int64, error)

	// Truncate changes the size of the stream.
	Truncate(size int64) error

	// Sync flushes buffered writes to the backing resource. Implementations
	// without a flush primitive should return nil.
	Sync() error

	// CanRead reports whether Read is supported.
	CanRead() bool

	// CanWrite reports whether Write is supported.
	CanWrite() bool

	// CanSeek reports whether Seek (and by extension Len) is supported.
	CanSeek() bool
}
