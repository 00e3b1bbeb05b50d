package window

import (
	"fmt"
	"io"

	"github.com/input-output-hk/catalyst-forge-libs/streams"
)

// Window presents the sub-range [base, base+length) of an underlying stream
// as a self-contained stream. The window keeps its own cursor, independent of
// the underlying stream's; every read and write repositions the underlying
// stream to the window-relative target first, so several windows may share
// one underlying stream as long as their calls are not interleaved.
//
// A Window is not safe for concurrent use.
type Window struct {
	src      streams.Stream
	base     int64
	length   int64
	pos      int64
	readOnly bool
	owns     bool
	closed   bool
}

// New creates a Window over src. With no options the window spans the whole
// stream, is writable (capability permitting), and does not own src.
//
// For a seekable src the window must fit within the stream's current extent:
// an offset past the end, or a length reaching past the end, fails with
// streams.ErrOutOfBounds. A zero length means "from offset to end of stream".
// For a non-seekable src the offset is forced to 0 and the length is taken as
// given; no validation against the extent is possible.
func New(src streams.Stream, opts ...Option) (*Window, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.offset < 0 || cfg.length < 0 {
		return nil, streams.NewError("window.new", streams.ErrOutOfBounds)
	}

	w := &Window{
		src:      src,
		base:     cfg.offset,
		length:   cfg.length,
		readOnly: cfg.readOnly,
		owns:     cfg.owns,
	}

	if src.CanSeek() {
		size, err := src.Len()
		if err != nil {
			return nil, streams.NewError("window.new", err)
		}
		if cfg.offset > size {
			return nil, streams.NewError("window.new", streams.ErrOutOfBounds)
		}
		if cfg.length > size-cfg.offset {
			return nil, streams.NewError("window.new", streams.ErrOutOfBounds)
		}
		if cfg.length == 0 {
			w.length = size - cfg.offset
		}
	} else {
		// The window cannot be positioned within a non-seekable stream.
		w.base = 0
	}

	return w, nil
}

// CanRead implements streams.Stream.CanRead.
func (w *Window) CanRead() bool {
	return w.src.CanRead()
}

// CanWrite implements streams.Stream.CanWrite.
func (w *Window) CanWrite() bool {
	return w.src.CanWrite() && !w.readOnly
}

// CanSeek implements streams.Stream.CanSeek.
func (w *Window) CanSeek() bool {
	return w.src.CanSeek()
}

// Base returns the configured start of the window within the underlying
// stream.
func (w *Window) Base() int64 {
	return w.base
}

// Raw returns the underlying stream, bypassing the window. Mixing direct use
// of the underlying stream with window operations moves the shared cursor out
// from under the window's repositioning.
//
//nolint:ireturn // returning the interface is intentional to expose the adapter target.
func (w *Window) Raw() streams.Stream {
	return w.src
}

// Len reports the size of the window. It performs no I/O.
func (w *Window) Len() (int64, error) {
	return w.length, nil
}

// Position returns the window-local cursor. It performs no I/O.
func (w *Window) Position() int64 {
	return w.pos
}

// SetPosition moves the window-local cursor. Unlike Seek, a position equal to
// the window length is permitted.
func (w *Window) SetPosition(pos int64) error {
	if w.closed {
		return streams.NewError("window.position", streams.ErrClosed)
	}
	if pos < 0 || pos > w.length {
		return streams.NewError("window.position", streams.ErrOutOfBounds)
	}
	if !w.src.CanSeek() {
		return streams.NewError("window.position", streams.ErrUnsupported)
	}
	w.pos = pos
	return nil
}

// Read implements streams.Stream.Read. The read is clipped to the window
// boundary and delegated once; short reads from the underlying stream are
// surfaced verbatim. At the end of the window Read returns io.EOF.
func (w *Window) Read(p []byte) (int, error) {
	if w.closed {
		return 0, streams.NewError("window.read", streams.ErrClosed)
	}
	if len(p) == 0 {
		return 0, nil
	}
	if w.pos >= w.length {
		return 0, io.EOF
	}
	if remaining := w.length - w.pos; int64(len(p)) > remaining {
		p = p[:remaining]
	}
	if err := w.reposition("window.read"); err != nil {
		return 0, err
	}

	n, err := w.src.Read(p)
	w.pos += int64(n)
	if err != nil && err != io.EOF {
		return n, streams.NewError("window.read", err)
	}
	return n, err
}

// Write implements streams.Stream.Write. The full slice must fit within the
// window: a write reaching past the end fails with streams.ErrOutOfBounds
// before any byte is written, leaving the cursor and the underlying stream
// untouched. Use Truncate first if growth is intended.
func (w *Window) Write(p []byte) (int, error) {
	if w.closed {
		return 0, streams.NewError("window.write", streams.ErrClosed)
	}
	if w.readOnly {
		return 0, streams.NewError("window.write", streams.ErrReadOnlyViolation)
	}
	if len(p) == 0 {
		return 0, nil
	}
	if w.pos+int64(len(p)) > w.length {
		return 0, streams.NewError("window.write", streams.ErrOutOfBounds)
	}
	if err := w.reposition("window.write"); err != nil {
		return 0, err
	}

	written := 0
	for written < len(p) {
		n, err := w.src.Write(p[written:])
		written += n
		if err == nil && n == 0 {
			err = io.ErrShortWrite
		}
		if err != nil {
			w.pos += int64(written)
			return written, streams.NewError("window.write", err)
		}
	}
	w.pos += int64(written)
	return written, nil
}

// Seek implements streams.Stream.Seek over the window-local address space.
// The resulting position must lie strictly within [0, length): seeking
// exactly to the end of the window is rejected, while SetPosition permits it.
func (w *Window) Seek(offset int64, whence int) (int64, error) {
	if w.closed {
		return 0, streams.NewError("window.seek", streams.ErrClosed)
	}
	if !w.src.CanSeek() {
		return 0, streams.NewError("window.seek", streams.ErrUnsupported)
	}

	var candidate int64
	switch whence {
	case io.SeekStart:
		candidate = offset
	case io.SeekCurrent:
		candidate = w.pos + offset
	case io.SeekEnd:
		candidate = w.length + offset
	default:
		return 0, streams.NewError("window.seek", fmt.Errorf("invalid whence %d", whence))
	}

	if candidate < 0 || candidate >= w.length {
		return 0, streams.NewError("window.seek", streams.ErrOutOfBounds)
	}
	w.pos = candidate
	return candidate, nil
}

// Truncate implements streams.Stream.Truncate: the underlying stream is
// resized to base+size and the window length updated to match. The cursor is
// not clamped; a cursor past the new length behaves per the usual boundary
// rules on subsequent reads and writes.
func (w *Window) Truncate(size int64) error {
	if w.closed {
		return streams.NewError("window.truncate", streams.ErrClosed)
	}
	if w.readOnly {
		return streams.NewError("window.truncate", streams.ErrReadOnlyViolation)
	}
	if size < 0 {
		return streams.NewError("window.truncate", streams.ErrOutOfBounds)
	}
	if err := w.src.Truncate(w.base + size); err != nil {
		return streams.NewError("window.truncate", err)
	}
	w.length = size
	return nil
}

// Sync implements streams.Stream.Sync.
func (w *Window) Sync() error {
	if w.closed {
		return streams.NewError("window.sync", streams.ErrClosed)
	}
	if w.readOnly {
		return streams.NewError("window.sync", streams.ErrReadOnlyViolation)
	}
	if err := w.src.Sync(); err != nil {
		return streams.NewError("window.sync", err)
	}
	return nil
}

// Close implements streams.Stream.Close. Closing is idempotent: the first
// call closes the underlying stream if the window owns it, later calls are
// no-ops. A non-owned underlying stream is never closed by the window.
func (w *Window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	if w.owns {
		if err := w.src.Close(); err != nil {
			return streams.NewError("window.close", err)
		}
	}
	return nil
}

// WriteTo copies the entire window, from its start, to dst, implementing
// io.WriterTo. The window's cursor is saved before the copy and restored on
// every exit path, so the caller observes the same position whether or not
// the copy succeeded.
func (w *Window) WriteTo(dst io.Writer) (int64, error) {
	if w.closed {
		return 0, streams.NewError("window.write_to", streams.ErrClosed)
	}
	if !w.src.CanSeek() {
		return 0, streams.NewError("window.write_to", streams.ErrUnsupported)
	}
	if w.length == 0 {
		return 0, nil
	}

	bufSize := int64(streams.DefaultBufferSize)
	if w.length < bufSize {
		bufSize = w.length
	}

	saved := w.pos
	defer func() {
		w.pos = saved
	}()
	w.pos = 0

	return streams.Copy(dst, w, streams.WithBufferSize(int(bufSize)))
}

// reposition moves the underlying cursor to the window-relative target before
// a read or write. Required only when the underlying stream is seekable; a
// non-seekable stream is consumed in order.
func (w *Window) reposition(op string) error {
	if !w.src.CanSeek() {
		return nil
	}
	if _, err := w.src.Seek(w.base+w.pos, io.SeekStart); err != nil {
		return streams.NewError(op, err)
	}
	return nil
}
