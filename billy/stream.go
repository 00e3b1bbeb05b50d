// Package billy adapts go-billy files to the streams.Stream interface.
// The adapter delegates every operation to the wrapped file; it implements no
// storage of its own.
package billy

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
)

// Stream wraps a go-billy File and satisfies the streams.Stream interface.
type Stream struct {
	file billy.File
}

// New creates a Stream over an already-open go-billy file.
func New(f billy.File) *Stream {
	return &Stream{
		file: f,
	}
}

// NewMemory creates a Stream backed by a file with the given name in a fresh
// in-memory filesystem. Useful as a scratch stream in tests and pipelines.
func NewMemory(name string) (*Stream, error) {
	f, err := memfs.New().Create(name)
	if err != nil {
		return nil, fmt.Errorf("billy: create %q: %w", name, err)
	}
	return &Stream{
		file: f,
	}, nil
}

// Name returns the name of the wrapped file.
func (s *Stream) Name() string {
	return s.file.Name()
}

// Read implements streams.Stream.Read.
func (s *Stream) Read(p []byte) (n int, err error) {
	n, err = s.file.Read(p)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return n, io.EOF
		}
		return n, fmt.Errorf("billy: read %q: %w", s.file.Name(), err)
	}
	return n, nil
}

// Write implements streams.Stream.Write.
func (s *Stream) Write(p []byte) (n int, err error) {
	n, err = s.file.Write(p)
	if err != nil {
		return n, fmt.Errorf("billy: write %q: %w", s.file.Name(), err)
	}
	return n, nil
}

// Seek implements streams.Stream.Seek.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	pos, err := s.file.Seek(offset, whence)
	if err != nil {
		return pos, fmt.Errorf("billy: seek %q off=%d whence=%d: %w", s.file.Name(), offset, whence, err)
	}
	return pos, nil
}

// Len implements streams.Stream.Len by seeking to the end of the file and
// back. The file's cursor is restored before returning.
func (s *Stream) Len() (int64, error) {
	cur, err := s.file.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("billy: len %q: %w", s.file.Name(), err)
	}
	end, err := s.file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("billy: len %q: %w", s.file.Name(), err)
	}
	if _, err := s.file.Seek(cur, io.SeekStart); err != nil {
		return 0, fmt.Errorf("billy: len %q: %w", s.file.Name(), err)
	}
	return end, nil
}

// Truncate implements streams.Stream.Truncate.
func (s *Stream) Truncate(size int64) error {
	if err := s.file.Truncate(size); err != nil {
		return fmt.Errorf("billy: truncate %q size=%d: %w", s.file.Name(), size, err)
	}
	return nil
}

// Sync implements streams.Stream.Sync. go-billy files have no flush
// primitive, so Sync is a no-op.
func (s *Stream) Sync() error {
	return nil
}

// Close implements streams.Stream.Close.
func (s *Stream) Close() error {
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("billy: close %q: %w", s.file.Name(), err)
	}
	return nil
}

// CanRead implements streams.Stream.CanRead.
func (s *Stream) CanRead() bool {
	return true
}

// CanWrite implements streams.Stream.CanWrite.
func (s *Stream) CanWrite() bool {
	return true
}

// CanSeek implements streams.Stream.CanSeek.
func (s *Stream) CanSeek() bool {
	return true
}

// Raw returns the underlying go-billy file.
//
//nolint:ireturn // returning interface here is intentional to expose the adapter target.
func (s *Stream) Raw() billy.File {
	return s.file
}
