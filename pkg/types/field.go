package types

import (
	"relstore/pkg/dberr"
	"relstore/pkg/primitives"
)

// Field is a single value in the store's value domain: one column of one row,
// an index key, or a predicate operand.
type Field interface {
	// Compare evaluates `f op other`. Comparing fields of different tags is
	// a type error; callers that need the null-aware semantics of the query
	// layer should go through the package-level Compare instead.
	Compare(op primitives.Predicate, other Field) (bool, error)

	Type() Type

	String() string

	// Equals is strict equality: same tag, same scalar.
	Equals(other Field) bool

	// Hash returns a stable hash of the field's tag and payload.
	Hash() primitives.HashCode

	// Key returns a comparable representation usable as a Go map key.
	// Fields with equal Key are Equals and vice versa.
	Key() Key
}

// Key is the comparable form of a Field. The payload slot matching Tag is
// set; byte buffers fold into the string slot.
type Key struct {
	Tag Type
	I   int64
	F   float64
	S   string
	B   bool
}

// Compare evaluates `a op b` with the query layer's null semantics:
// a null operand on either side is never a type error — equality holds iff
// both sides are null, inequality iff they are not both null, and the
// ordering operators never hold. Two non-null fields of different tags are
// a type error.
func Compare(a Field, op primitives.Predicate, b Field) (bool, error) {
	if a.Type() == NullType || b.Type() == NullType {
		bothNull := a.Type() == NullType && b.Type() == NullType
		switch op {
		case primitives.Equals:
			return bothNull, nil
		case primitives.NotEqual:
			return !bothNull, nil
		default:
			return false, nil
		}
	}

	if a.Type() != b.Type() {
		return false, dberr.Newf(dberr.KindTypeError,
			"cannot compare %s with %s", a.Type(), b.Type())
	}

	return a.Compare(op, b)
}
