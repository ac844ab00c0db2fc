package numparse

import (
	"errors"
	"testing"
)

func ok[T comparable](t *testing.T, input string, got T, err error, want T) {
	t.Helper()
	if err != nil {
		t.Errorf("%q: unexpected error: %v", input, err)
		return
	}
	if got != want {
		t.Errorf("%q: got %v, want %v", input, got, want)
	}
}

func fails(t *testing.T, input string, err error, kind Kind, msg string) {
	t.Helper()
	if err == nil {
		t.Errorf("%q: expected %v error", input, kind)
		return
	}
	if !errors.Is(err, kind) {
		t.Errorf("%q: got %v (%v), want kind %v", input, err, errors.Unwrap(err), kind)
	}
	if err.Error() != msg {
		t.Errorf("%q: got message %q, want %q", input, err.Error(), msg)
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Errorf("%q: %T is not *Error", input, err)
	}
}

func TestKindIsError(t *testing.T) {
	err := error(newError(Overflow, "300", msgTooLarge))
	if !errors.Is(err, Overflow) || errors.Is(err, MalformedNumber) {
		t.Fatalf("errors.Is does not follow Kind")
	}
	if Overflow.Error() != "overflow" {
		t.Fatalf("Overflow.Error() = %q", Overflow.Error())
	}
	if Kind(99).String() != "Kind(99)" {
		t.Fatalf("unknown kind: %q", Kind(99).String())
	}
}
