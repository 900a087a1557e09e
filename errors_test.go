package calendar

import (
	"fmt"
	"testing"
)

func TestRequestError(t *testing.T) {
	err := NewRequestError("Diff", "subject and other differ in kind")
	if err.Op != "Diff" {
		t.Errorf("expected op Diff, got %s", err.Op)
	}
	if err.Reason != "subject and other differ in kind" {
		t.Errorf("unexpected reason: %s", err.Reason)
	}

	expected := "calendar Diff: subject and other differ in kind"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestIsRequest(t *testing.T) {
	reqErr := NewRequestError("Add", "missing subject")

	// Direct.
	r, ok := IsRequest(reqErr)
	if !ok {
		t.Fatal("expected IsRequest to return true")
	}
	if r.Op != "Add" {
		t.Errorf("expected op Add, got %s", r.Op)
	}

	// Wrapped.
	wrapped := fmt.Errorf("wrapped: %w", reqErr)
	r2, ok2 := IsRequest(wrapped)
	if !ok2 {
		t.Fatal("expected IsRequest to unwrap wrapped error")
	}
	if r2.Reason != "missing subject" {
		t.Errorf("unexpected reason %q", r2.Reason)
	}

	// Plain error.
	_, ok3 := IsRequest(fmt.Errorf("just a regular error"))
	if ok3 {
		t.Fatal("expected IsRequest to return false for a plain error")
	}

	// Nil.
	_, ok4 := IsRequest(nil)
	if ok4 {
		t.Fatal("expected IsRequest to return false for nil")
	}
}
