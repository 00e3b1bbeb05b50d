package streams

import "io"

// DefaultBufferSize is the chunk size used by Copy when no explicit buffer
// size is configured.
const DefaultBufferSize = 128 * 1024

// CopyOption configures the behavior of Copy.
// Options follow the functional options pattern for clean, composable configuration.
type CopyOption func(*copyConfig)

type copyConfig struct {
	bufferSize     int
	flushEachChunk bool
}

// WithBufferSize sets the chunk size used for the copy.
// Default is DefaultBufferSize. Values below 1 are ignored.
func WithBufferSize(size int) CopyOption {
	return func(c *copyConfig) {
		if size > 0 {
			c.bufferSize = size
		}
	}
}

// WithFlushEachChunk flushes the destination after every chunk written.
// The destination must expose a Sync() or Flush() method for this to have
// any effect.
func WithFlushEachChunk() CopyOption {
	return func(c *copyConfig) {
		c.flushEachChunk = true
	}
}

// Copy reads from src in chunks and writes each chunk fully to dst until src
// is exhausted, returning the total number of bytes copied. A read returning
// zero bytes (or io.EOF) is the sole termination signal; short reads keep the
// loop going. There is no upper bound on the total; errors from either
// endpoint abort the copy immediately.
func Copy(dst io.Writer, src io.Reader, opts ...CopyOption) (int64, error) {
	cfg := copyConfig{bufferSize: DefaultBufferSize}
	for _, opt := range opts {
		opt(&cfg)
	}

	buf := make([]byte, cfg.bufferSize)
	var written int64

	for {
		n, rerr := src.Read(buf)
		if n > 0 {
			wn, werr := writeFull(dst, buf[:n])
			written += int64(wn)
			if werr != nil {
				return written, NewError("copy", werr)
			}
			if cfg.flushEachChunk {
				if ferr := flush(dst); ferr != nil {
					return written, NewError("copy", ferr)
				}
			}
		}
		if rerr == io.EOF || (rerr == nil && n == 0) {
			return written, nil
		}
		if rerr != nil {
			return written, NewError("copy", rerr)
		}
	}
}

// ReadExact reads from src until buf is completely filled, returning the
// number of bytes read. It is the strict counterpart to a plain Read: a read
// yielding zero bytes before buf is full fails with ErrUnexpectedEOF.
func ReadExact(src io.Reader, buf []byte) (int, error) {
	total := 0
	for total < len(buf) {
		n, err := src.Read(buf[total:])
		total += n
		if total == len(buf) {
			return total, nil
		}
		if err != nil && err != io.EOF {
			return total, NewError("read_exact", err)
		}
		if n == 0 || err == io.EOF {
			return total, NewError("read_exact", ErrUnexpectedEOF)
		}
	}
	return total, nil
}

// writeFull writes all of p to w, converting a silent short write into
// io.ErrShortWrite.
func writeFull(w io.Writer, p []byte) (int, error) {
	n, err := w.Write(p)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	return n, err
}

// flush invokes the destination's flush primitive, if it has one.
func flush(w io.Writer) error {
	switch f := w.(type) {
	case interface{ Sync() error }:
		return f.Sync()
	case interface{ Flush() error }:
		return f.Flush()
	}
	return nil
}
