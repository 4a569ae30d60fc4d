package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/dalmcut/dalmcut/pkg/errors"
)

func TestNewAndIs(t *testing.T) {
	err := errors.New(errors.ErrCodeDomainTooLarge, "pattern %v overflows", []int{1, 2})
	if !errors.Is(err, errors.ErrCodeDomainTooLarge) {
		t.Fatal("expected Is to match the constructed code")
	}
	if errors.Is(err, errors.ErrCodeDeadEnd) {
		t.Fatal("expected Is to reject a different code")
	}
}

func TestWrapUnwrap(t *testing.T) {
	cause := stderrors.New("boom")
	err := errors.Wrap(errors.ErrCodeUnsolvableTask, cause, "initial state dead")

	if !stderrors.Is(err, cause) {
		t.Fatal("expected errors.Is to find the wrapped cause")
	}
	if errors.GetCode(err) != errors.ErrCodeUnsolvableTask {
		t.Fatalf("GetCode = %s, want %s", errors.GetCode(err), errors.ErrCodeUnsolvableTask)
	}
}

func TestGetCodeOnPlainError(t *testing.T) {
	if got := errors.GetCode(stderrors.New("plain")); got != "" {
		t.Fatalf("GetCode on a plain error = %q, want empty", got)
	}
}

func TestInvariantPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected Invariant(false, ...) to panic")
		}
		err, ok := r.(*errors.Error)
		if !ok {
			t.Fatalf("panic value = %T, want *errors.Error", r)
		}
		if err.Code != errors.ErrCodeInvariantViolation {
			t.Fatalf("panic code = %s, want %s", err.Code, errors.ErrCodeInvariantViolation)
		}
	}()
	errors.Invariant(1 == 2, "one is not two")
}

func TestInvariantNoPanic(t *testing.T) {
	errors.Invariant(1 == 1, "unreachable")
}
