package dberr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an error into the store's taxonomy. Every failure surfaced
// by the public API carries exactly one Kind.
type Kind int

const (
	// KindNotFound is returned when a referenced table, index or column does
	// not exist.
	KindNotFound Kind = iota

	// KindAlreadyExists is returned when creating a table or index under a
	// name that is already taken.
	KindAlreadyExists

	// KindSchemaMismatch is returned when an inserted or updated value's tag
	// does not match the declared column type.
	KindSchemaMismatch

	// KindTypeError is returned when a predicate compares values of
	// incompatible tags, or when a host value cannot be coerced into the
	// value domain.
	KindTypeError

	// KindInvalidArgument is returned for malformed requests, such as an
	// unknown operator symbol in a where clause.
	KindInvalidArgument
)

// String returns a stable code for the kind, usable in log output.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NOT_FOUND"
	case KindAlreadyExists:
		return "ALREADY_EXISTS"
	case KindSchemaMismatch:
		return "SCHEMA_MISMATCH"
	case KindTypeError:
		return "TYPE_ERROR"
	case KindInvalidArgument:
		return "INVALID_ARGUMENT"
	default:
		return "UNKNOWN"
	}
}

// Error is a structured store error with context about where it originated.
type Error struct {
	// Kind classifies the error for programmatic handling.
	Kind Kind

	// Message is a human-readable description of what went wrong.
	Message string

	// Detail provides additional context about the specific instance,
	// e.g. the table or column name involved.
	Detail string

	// Operation identifies the store operation that was being performed,
	// e.g. "Insert", "CreateIndex".
	Operation string

	// Component identifies where the error originated, e.g. "catalog",
	// "table", "executor".
	Component string

	// Cause is the underlying error, if any.
	Cause error
}

// New creates a new Error with the given kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf creates a new Error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches operation and component context to an existing error.
// If err is already an *Error the context is filled in only where missing;
// otherwise err becomes the cause of a new KindInvalidArgument error.
func Wrap(err error, operation, component string) *Error {
	if err == nil {
		return nil
	}

	var e *Error
	if errors.As(err, &e) {
		if e.Operation == "" {
			e.Operation = operation
		}
		if e.Component == "" {
			e.Component = component
		}
		return e
	}

	return &Error{
		Kind:      KindInvalidArgument,
		Message:   err.Error(),
		Operation: operation,
		Component: component,
		Cause:     err,
	}
}

// WithDetail returns the error with its detail set.
func (e *Error) WithDetail(format string, args ...any) *Error {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Error implements the error interface. The format is:
//
//	[KIND] Message: Detail (operation: Op, component: Comp) caused by: cause
func (e *Error) Error() string {
	var b strings.Builder

	fmt.Fprintf(&b, "[%s] %s", e.Kind, e.Message)

	if e.Detail != "" {
		fmt.Fprintf(&b, ": %s", e.Detail)
	}

	if e.Operation != "" {
		fmt.Fprintf(&b, " (operation: %s", e.Operation)
		if e.Component != "" {
			fmt.Fprintf(&b, ", component: %s", e.Component)
		}
		b.WriteString(")")
	}

	if e.Cause != nil {
		fmt.Fprintf(&b, " caused by: %v", e.Cause)
	}

	return b.String()
}

// Unwrap returns the underlying cause, enabling errors.Is / errors.As
// traversal through wrapped errors.
func (e *Error) Unwrap() error {
	return e.Cause
}

// KindOf extracts the Kind from an error chain. The second return is false
// if the chain contains no *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func hasKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool { return hasKind(err, KindNotFound) }

// IsAlreadyExists reports whether err is an AlreadyExists error.
func IsAlreadyExists(err error) bool { return hasKind(err, KindAlreadyExists) }

// IsSchemaMismatch reports whether err is a SchemaMismatch error.
func IsSchemaMismatch(err error) bool { return hasKind(err, KindSchemaMismatch) }

// IsTypeError reports whether err is a TypeError.
func IsTypeError(err error) bool { return hasKind(err, KindTypeError) }

// IsInvalidArgument reports whether err is an InvalidArgument error.
func IsInvalidArgument(err error) bool { return hasKind(err, KindInvalidArgument) }
