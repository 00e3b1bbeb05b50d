package streams

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Format(t *testing.T) {
	err := NewError("window.seek", ErrOutOfBounds)
	want := "streams.window.seek: streams: out of bounds"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestError_Unwrap(t *testing.T) {
	inner := errors.New("backing store gone")
	err := NewError("copy", inner)
	if !errors.Is(err, inner) {
		t.Errorf("errors.Is(err, inner) = false, want true")
	}

	var opErr *Error
	wrapped := fmt.Errorf("outer: %w", err)
	if !errors.As(wrapped, &opErr) {
		t.Fatalf("errors.As failed to find *Error in chain")
	}
	if opErr.Op != "copy" {
		t.Errorf("Op = %q, want %q", opErr.Op, "copy")
	}
}

func TestErrorPredicates(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		predicate func(error) bool
	}{
		{name: "out of bounds", err: ErrOutOfBounds, predicate: IsOutOfBounds},
		{name: "read-only violation", err: ErrReadOnlyViolation, predicate: IsReadOnlyViolation},
		{name: "unsupported", err: ErrUnsupported, predicate: IsUnsupported},
		{name: "unexpected EOF", err: ErrUnexpectedEOF, predicate: IsUnexpectedEOF},
		{name: "closed", err: ErrClosed, predicate: IsClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.predicate(NewError("op", tt.err)) {
				t.Errorf("predicate(%v) = false, want true", tt.err)
			}
			if tt.predicate(errors.New("unrelated")) {
				t.Errorf("predicate(unrelated) = true, want false")
			}
		})
	}
}
