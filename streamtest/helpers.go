package streamtest

import (
	"io"

	"github.com/input-output-hk/catalyst-forge-libs/streams"
)

// NonSeekable hides the seek capability of a stream: CanSeek reports false
// and every Seek fails with streams.ErrUnsupported. All other operations pass
// through unchanged.
//
//nolint:ireturn // API returns the streams.Stream interface by design for flexibility.
func NonSeekable(s streams.Stream) streams.Stream {
	return &nonSeekable{Stream: s}
}

type nonSeekable struct {
	streams.Stream
}

func (s *nonSeekable) CanSeek() bool {
	return false
}

func (s *nonSeekable) Seek(offset int64, whence int) (int64, error) {
	return 0, streams.NewError("seek", streams.ErrUnsupported)
}

func (s *nonSeekable) Len() (int64, error) {
	return 0, streams.NewError("len", streams.ErrUnsupported)
}

// ChunkReader returns a reader that yields data in chunks of at most the
// given sizes, cycling through sizes until data is exhausted. It never
// returns a zero-length read; useful for exercising short-read handling.
func ChunkReader(data []byte, sizes ...int) io.Reader {
	if len(sizes) == 0 {
		sizes = []int{1}
	}
	return &chunkReader{data: data, sizes: sizes}
}

type chunkReader struct {
	data  []byte
	sizes []int
	next  int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := r.sizes[r.next%len(r.sizes)]
	r.next++
	if n < 1 {
		n = 1
	}
	if n > len(r.data) {
		n = len(r.data)
	}
	if n > len(p) {
		n = len(p)
	}
	copied := copy(p, r.data[:n])
	r.data = r.data[copied:]
	return copied, nil
}

// FailingWriter returns a writer that accepts limit bytes and then fails
// every subsequent write with the given error. Useful for verifying abort
// and cleanup paths in copy routines.
func FailingWriter(limit int, err error) io.Writer {
	return &failingWriter{remaining: limit, err: err}
}

type failingWriter struct {
	remaining int
	err       error
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.remaining <= 0 {
		return 0, w.err
	}
	if len(p) > w.remaining {
		n := w.remaining
		w.remaining = 0
		return n, w.err
	}
	w.remaining -= len(p)
	return len(p), nil
}
