package billy_test

import (
	"io"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/streams"
	"github.com/input-output-hk/catalyst-forge-libs/streams/billy"
	"github.com/input-output-hk/catalyst-forge-libs/streams/streamtest"
)

func newSeeded(t *testing.T, seed []byte) *billy.Stream {
	t.Helper()
	s, err := billy.NewMemory("stream.bin")
	if err != nil {
		t.Fatalf("NewMemory failed: %v", err)
	}
	if len(seed) > 0 {
		if _, err := s.Write(seed); err != nil {
			t.Fatalf("Write(seed) failed: %v", err)
		}
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			t.Fatalf("Seek(0) failed: %v", err)
		}
	}
	return s
}

func TestStream_Conformance(t *testing.T) {
	streamtest.TestStream(t, func(t *testing.T, seed []byte) streams.Stream {
		return newSeeded(t, seed)
	})
}

func TestStream_LenPreservesCursor(t *testing.T) {
	s := newSeeded(t, []byte("0123456789"))

	if _, err := s.Seek(7, io.SeekStart); err != nil {
		t.Fatalf("Seek failed: %v", err)
	}
	size, err := s.Len()
	if err != nil {
		t.Fatalf("Len failed: %v", err)
	}
	if size != 10 {
		t.Errorf("Len() = %d, want 10", size)
	}

	pos, err := s.Seek(0, io.SeekCurrent)
	if err != nil {
		t.Fatalf("Seek(0, SeekCurrent) failed: %v", err)
	}
	if pos != 7 {
		t.Errorf("cursor after Len() = %d, want 7", pos)
	}
}

func TestStream_NameAndRaw(t *testing.T) {
	s := newSeeded(t, nil)
	if s.Name() != "stream.bin" {
		t.Errorf("Name() = %q, want %q", s.Name(), "stream.bin")
	}
	if s.Raw() == nil {
		t.Errorf("Raw() = nil, want the wrapped file")
	}
}

func TestStream_Capabilities(t *testing.T) {
	s := newSeeded(t, nil)
	if !s.CanRead() || !s.CanWrite() || !s.CanSeek() {
		t.Errorf("capabilities = (%v, %v, %v), want all true", s.CanRead(), s.CanWrite(), s.CanSeek())
	}
	if err := s.Sync(); err != nil {
		t.Errorf("Sync() = %v, want nil", err)
	}
}
