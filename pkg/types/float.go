package types

import (
	"encoding/binary"
	"math"
	"strconv"

	"relstore/pkg/primitives"
)

// FloatField represents a double-precision floating point value.
type FloatField struct {
	Value float64
}

func NewFloatField(value float64) *FloatField {
	return &FloatField{Value: value}
}

func (f *FloatField) Compare(op primitives.Predicate, other Field) (bool, error) {
	o, ok := other.(*FloatField)
	if !ok {
		return false, typeMismatch(f, other)
	}
	return compareOrdered(f.Value, o.Value, op), nil
}

func (f *FloatField) Type() Type {
	return FloatType
}

func (f *FloatField) String() string {
	return strconv.FormatFloat(f.Value, 'g', -1, 64)
}

func (f *FloatField) Equals(other Field) bool {
	o, ok := other.(*FloatField)
	if !ok {
		return false
	}
	return f.Value == o.Value
}

func (f *FloatField) Hash() primitives.HashCode {
	v := f.Value
	if v == 0 {
		v = 0 // fold -0.0 into +0.0: Equals and Key treat them as one value
	}
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, math.Float64bits(v))
	return fnvHash(FloatType, b)
}

func (f *FloatField) Key() Key {
	return Key{Tag: FloatType, F: f.Value}
}
