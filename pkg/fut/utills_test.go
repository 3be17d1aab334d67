package fut

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestGetErrors(t *testing.T) {
	t.Parallel()
	errA := errors.New("a")
	errB := errors.New("b")

	if got := GetErrors(nil); len(got) != 0 {
		t.Fatalf("expected no errors for nil, got %v", got)
	}
	if got := GetErrors(errA); len(got) != 1 || got[0] != errA {
		t.Fatalf("expected [a] for plain error, got %v", got)
	}
	got := GetErrors(errors.Join(errA, errB))
	if len(got) != 2 || got[0] != errA || got[1] != errB {
		t.Fatalf("expected [a b] for joined error, got %v", got)
	}
}

func TestIsNil(t *testing.T) {
	t.Parallel()
	var typedNil *fmt.Stringer
	if !IsNil(nil) || !IsNil(typedNil) {
		t.Fatalf("expected nil and typed nil pointer to be nil")
	}
	if IsNil(errors.New("x")) {
		t.Fatalf("expected non-nil error to not be nil")
	}
}

func TestIsCancellationError(t *testing.T) {
	t.Parallel()
	if !IsCancellationError(context.Canceled) ||
		!IsCancellationError(context.DeadlineExceeded) ||
		!IsCancellationError(ErrCanceled) {
		t.Fatalf("expected cancellation errors to be classified")
	}
	if IsCancellationError(errors.New("x")) {
		t.Fatalf("expected generic error to not be a cancellation")
	}
}

func TestPanicError(t *testing.T) {
	t.Parallel()
	errA := errors.New("a")
	if PanicError(errA) != errA {
		t.Fatalf("expected error panic value to pass through")
	}
	if got := PanicError("boom"); got == nil || got.Error() != "panic: boom" {
		t.Fatalf("expected wrapped panic value, got %v", got)
	}
}
