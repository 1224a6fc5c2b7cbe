package dberr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(KindNotFound, "table does not exist")

	if err.Kind != KindNotFound {
		t.Errorf("Expected kind %v, got %v", KindNotFound, err.Kind)
	}
	if !strings.Contains(err.Error(), "[NOT_FOUND]") {
		t.Errorf("Expected error string to contain the kind code, got %q", err.Error())
	}
}

func TestNewf(t *testing.T) {
	err := Newf(KindAlreadyExists, "table %q already exists", "users")

	if !strings.Contains(err.Error(), `table "users" already exists`) {
		t.Errorf("Unexpected message: %q", err.Error())
	}
}

func TestWrap_AddsContext(t *testing.T) {
	inner := New(KindTypeError, "cannot compare")
	wrapped := Wrap(inner, "Select", "executor")

	if wrapped.Kind != KindTypeError {
		t.Errorf("Wrap should preserve kind, got %v", wrapped.Kind)
	}
	if wrapped.Operation != "Select" || wrapped.Component != "executor" {
		t.Errorf("Wrap did not fill context: %+v", wrapped)
	}

	// Existing context is not overwritten.
	again := Wrap(wrapped, "Update", "table")
	if again.Operation != "Select" {
		t.Errorf("Wrap overwrote operation: %q", again.Operation)
	}
}

func TestWrap_ForeignError(t *testing.T) {
	cause := fmt.Errorf("plain failure")
	wrapped := Wrap(cause, "Insert", "table")

	if !errors.Is(wrapped, cause) {
		t.Error("Expected wrapped error chain to contain the cause")
	}
}

func TestWrap_Nil(t *testing.T) {
	if Wrap(nil, "op", "comp") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

func TestKindPredicates(t *testing.T) {
	cases := []struct {
		err  error
		pred func(error) bool
	}{
		{New(KindNotFound, "x"), IsNotFound},
		{New(KindAlreadyExists, "x"), IsAlreadyExists},
		{New(KindSchemaMismatch, "x"), IsSchemaMismatch},
		{New(KindTypeError, "x"), IsTypeError},
		{New(KindInvalidArgument, "x"), IsInvalidArgument},
	}

	for i, c := range cases {
		if !c.pred(c.err) {
			t.Errorf("case %d: predicate did not match its own kind", i)
		}
	}

	if IsNotFound(fmt.Errorf("plain")) {
		t.Error("IsNotFound should be false for foreign errors")
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", New(KindSchemaMismatch, "bad tag"))

	kind, ok := KindOf(wrapped)
	if !ok || kind != KindSchemaMismatch {
		t.Errorf("KindOf through fmt wrapping = %v, %v", kind, ok)
	}
}

func TestError_Format(t *testing.T) {
	err := Newf(KindNotFound, "table missing").WithDetail("name %q", "users")
	err.Operation = "GetTable"
	err.Component = "catalog"

	s := err.Error()
	for _, part := range []string{"[NOT_FOUND]", "table missing", `"users"`, "GetTable", "catalog"} {
		if !strings.Contains(s, part) {
			t.Errorf("Error() = %q, missing %q", s, part)
		}
	}
}
