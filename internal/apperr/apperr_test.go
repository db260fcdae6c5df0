package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	if got := KindOf(Validation("bad input")); got != KindValidation {
		t.Fatalf("got %q, want %q", got, KindValidation)
	}
	if got := KindOf(fmt.Errorf("create booking: %w", Conflict("Vehicle is not available"))); got != KindConflict {
		t.Fatalf("wrapped error lost its kind: got %q", got)
	}
	if got := KindOf(errors.New("driver exploded")); got != "" {
		t.Fatalf("opaque fault should have no kind, got %q", got)
	}
	if got := KindOf(nil); got != "" {
		t.Fatalf("nil should have no kind, got %q", got)
	}
}

func TestConflictf(t *testing.T) {
	err := Conflictf("Cannot update booking with status: %s", "returned")
	if err.Error() != "Cannot update booking with status: returned" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if err.Kind() != KindConflict {
		t.Fatalf("unexpected kind: %q", err.Kind())
	}
}
