// Package streamtest provides a conformance test suite for validating
// implementations of the streams.Stream interface, plus test doubles for
// exercising short-read and missing-capability paths.
//
// The suite validates the interface contract only, not backend-specific
// behavior: it limits itself to operations every full-capability stream must
// support (in-place overwrites, seeks within the current extent, shrinking
// truncates), so it also holds for bounded views that cannot grow.
//
// Example usage:
//
//	func TestMyStream(t *testing.T) {
//	    streamtest.TestStream(t, func(t *testing.T, seed []byte) streams.Stream {
//	        return mystream.New(seed)
//	    })
//	}
package streamtest

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/streams"
)

// Factory returns a fresh stream positioned at 0 whose contents are exactly
// seed. Each invocation must return an independent stream; the suite mutates
// what it is given.
type Factory func(t *testing.T, seed []byte) streams.Stream

// TestStream runs all conformance tests against streams produced by newStream.
func TestStream(t *testing.T, newStream Factory) {
	TestStreamWithSkip(t, newStream, nil)
}

// TestStreamWithSkip runs conformance tests with optional test skipping.
// The skipTests parameter is a slice of subtest names to skip (e.g. "Truncate").
// This is useful for implementations with documented contract differences.
func TestStreamWithSkip(t *testing.T, newStream Factory, skipTests []string) {
	shouldSkip := func(name string) bool {
		for _, skip := range skipTests {
			if skip == name {
				return true
			}
		}
		return false
	}

	run := func(name string, fn func(*testing.T, Factory)) {
		t.Run(name, func(t *testing.T) {
			if shouldSkip(name) {
				t.Skip("Skipped by implementation configuration")
				return
			}
			fn(t, newStream)
		})
	}

	run("Read", TestRead)
	run("Seek", TestSeek)
	run("Overwrite", TestOverwrite)
	run("Truncate", TestTruncate)
	run("Capabilities", TestCapabilities)
	run("Close", TestClose)
}

// TestRead verifies that the seed content reads back exactly and that the
// stream signals io.EOF at its end.
func TestRead(t *testing.T, newStream Factory) {
	seed := []byte("the quick brown fox jumps over the lazy dog")
	s := newStream(t, seed)

	got := make([]byte, len(seed))
	if _, err := streams.ReadExact(s, got); err != nil {
		t.Fatalf("ReadExact(): got error %v, want nil", err)
	}
	if !bytes.Equal(got, seed) {
		t.Errorf("ReadExact(): got %q, want %q", got, seed)
	}

	n, err := s.Read(make([]byte, 1))
	if n != 0 || !errors.Is(err, io.EOF) {
		t.Errorf("Read() at end: got (%d, %v), want (0, io.EOF)", n, err)
	}
}

// TestSeek verifies seeking from the start, from the current position, and
// backwards from the current position.
func TestSeek(t *testing.T, newStream Factory) {
	seed := []byte("0123456789")
	s := newStream(t, seed)

	pos, err := s.Seek(4, io.SeekStart)
	if err != nil {
		t.Fatalf("Seek(4, SeekStart): got error %v, want nil", err)
	}
	if pos != 4 {
		t.Errorf("Seek(4, SeekStart): got position %d, want 4", pos)
	}

	buf := make([]byte, 2)
	if _, err := streams.ReadExact(s, buf); err != nil {
		t.Fatalf("ReadExact() after seek: got error %v, want nil", err)
	}
	if string(buf) != "45" {
		t.Errorf("ReadExact() after seek: got %q, want %q", buf, "45")
	}

	pos, err = s.Seek(-3, io.SeekCurrent)
	if err != nil {
		t.Fatalf("Seek(-3, SeekCurrent): got error %v, want nil", err)
	}
	if pos != 3 {
		t.Errorf("Seek(-3, SeekCurrent): got position %d, want 3", pos)
	}

	if _, err := streams.ReadExact(s, buf[:1]); err != nil {
		t.Fatalf("ReadExact() after relative seek: got error %v, want nil", err)
	}
	if buf[0] != '3' {
		t.Errorf("ReadExact() after relative seek: got %q, want %q", buf[0], byte('3'))
	}
}

// TestOverwrite verifies an in-place overwrite within the current extent and
// that the replaced bytes read back.
func TestOverwrite(t *testing.T, newStream Factory) {
	seed := []byte("aaaabbbbcccc")
	s := newStream(t, seed)

	if _, err := s.Seek(4, io.SeekStart); err != nil {
		t.Fatalf("Seek(4, SeekStart): got error %v, want nil", err)
	}
	if _, err := s.Write([]byte("XXXX")); err != nil {
		t.Fatalf("Write(): got error %v, want nil", err)
	}

	if _, err := s.Seek(0, io.SeekStart); err != nil {
		t.Fatalf("Seek(0, SeekStart): got error %v, want nil", err)
	}
	got := make([]byte, len(seed))
	if _, err := streams.ReadExact(s, got); err != nil {
		t.Fatalf("ReadExact(): got error %v, want nil", err)
	}
	if want := "aaaaXXXXcccc"; string(got) != want {
		t.Errorf("ReadExact() after overwrite: got %q, want %q", got, want)
	}
}

// TestTruncate verifies that a shrinking truncate is reflected by Len.
func TestTruncate(t *testing.T, newStream Factory) {
	seed := []byte("0123456789")
	s := newStream(t, seed)

	if err := s.Truncate(4); err != nil {
		t.Fatalf("Truncate(4): got error %v, want nil", err)
	}
	size, err := s.Len()
	if err != nil {
		t.Fatalf("Len(): got error %v, want nil", err)
	}
	if size != 4 {
		t.Errorf("Len() after Truncate(4): got %d, want 4", size)
	}
}

// TestCapabilities verifies that the capability queries do not lie: a
// reported capability must be backed by a working operation.
func TestCapabilities(t *testing.T, newStream Factory) {
	seed := []byte("capability probe")
	s := newStream(t, seed)

	if s.CanSeek() {
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			t.Errorf("CanSeek() = true but Seek failed: %v", err)
		}
	}
	if s.CanRead() {
		if _, err := s.Read(make([]byte, 1)); err != nil && !errors.Is(err, io.EOF) {
			t.Errorf("CanRead() = true but Read failed: %v", err)
		}
	}
	if s.CanWrite() && s.CanSeek() {
		if _, err := s.Seek(0, io.SeekStart); err != nil {
			t.Fatalf("Seek(0, SeekStart): got error %v, want nil", err)
		}
		if _, err := s.Write([]byte("C")); err != nil {
			t.Errorf("CanWrite() = true but Write failed: %v", err)
		}
	}
}

// TestClose verifies the stream closes cleanly.
func TestClose(t *testing.T, newStream Factory) {
	s := newStream(t, []byte("close me"))
	if err := s.Close(); err != nil {
		t.Errorf("Close(): got error %v, want nil", err)
	}
}
