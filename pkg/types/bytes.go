package types

import (
	"bytes"
	"fmt"

	"relstore/pkg/primitives"
)

// BytesField represents an opaque byte buffer. Buffers order and compare
// lexicographically.
type BytesField struct {
	Value []byte
}

func NewBytesField(value []byte) *BytesField {
	return &BytesField{Value: value}
}

func (f *BytesField) Compare(op primitives.Predicate, other Field) (bool, error) {
	o, ok := other.(*BytesField)
	if !ok {
		return false, typeMismatch(f, other)
	}

	c := bytes.Compare(f.Value, o.Value)
	switch op {
	case primitives.Equals:
		return c == 0, nil
	case primitives.NotEqual:
		return c != 0, nil
	case primitives.LessThan:
		return c < 0, nil
	case primitives.LessThanOrEqual:
		return c <= 0, nil
	case primitives.GreaterThan:
		return c > 0, nil
	case primitives.GreaterThanOrEqual:
		return c >= 0, nil
	default:
		return false, nil
	}
}

func (f *BytesField) Type() Type {
	return BytesType
}

func (f *BytesField) String() string {
	return fmt.Sprintf("0x%x", f.Value)
}

func (f *BytesField) Equals(other Field) bool {
	o, ok := other.(*BytesField)
	if !ok {
		return false
	}
	return bytes.Equal(f.Value, o.Value)
}

func (f *BytesField) Hash() primitives.HashCode {
	return fnvHash(BytesType, f.Value)
}

func (f *BytesField) Key() Key {
	return Key{Tag: BytesType, S: string(f.Value)}
}
