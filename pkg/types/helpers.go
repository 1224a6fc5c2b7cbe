package types

import (
	"cmp"
	"hash/fnv"

	"relstore/pkg/dberr"
	"relstore/pkg/primitives"
)

// compareOrdered performs a comparison between two ordered values using the given predicate.
func compareOrdered[T cmp.Ordered](a, b T, op primitives.Predicate) bool {
	switch op {
	case primitives.Equals:
		return a == b
	case primitives.NotEqual:
		return a != b
	case primitives.LessThan:
		return a < b
	case primitives.LessThanOrEqual:
		return a <= b
	case primitives.GreaterThan:
		return a > b
	case primitives.GreaterThanOrEqual:
		return a >= b
	default:
		return false
	}
}

// fnvHash computes an FNV-1a hash of the tag byte followed by the payload bytes.
func fnvHash(tag Type, data []byte) primitives.HashCode {
	h := fnv.New64a()
	_, _ = h.Write([]byte{byte(tag)})
	_, _ = h.Write(data)
	return primitives.HashCode(h.Sum64())
}

// typeMismatch builds the error returned when two concrete fields of
// different tags are compared directly.
func typeMismatch(a, b Field) error {
	return dberr.Newf(dberr.KindTypeError,
		"cannot compare %s with %s", a.Type(), b.Type())
}
