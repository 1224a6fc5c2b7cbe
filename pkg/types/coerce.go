package types

import (
	"math"

	"relstore/pkg/dberr"
)

// Coerce converts a host value into the value domain. Already-typed Fields
// pass through unchanged, nil becomes NULL, Go integers of any width become
// IntField, real numbers become FloatField, strings become StringField,
// booleans become BoolField and byte slices become BytesField. Anything else,
// and an unsigned integer above math.MaxInt64, is a type error.
func Coerce(v any) (Field, error) {
	switch x := v.(type) {
	case nil:
		return Null, nil
	case Field:
		return x, nil
	case bool:
		return NewBoolField(x), nil
	case int:
		return NewIntField(int64(x)), nil
	case int8:
		return NewIntField(int64(x)), nil
	case int16:
		return NewIntField(int64(x)), nil
	case int32:
		return NewIntField(int64(x)), nil
	case int64:
		return NewIntField(x), nil
	case uint:
		return coerceUint(uint64(x))
	case uint8:
		return NewIntField(int64(x)), nil
	case uint16:
		return NewIntField(int64(x)), nil
	case uint32:
		return NewIntField(int64(x)), nil
	case uint64:
		return coerceUint(x)
	case float32:
		return NewFloatField(float64(x)), nil
	case float64:
		return NewFloatField(x), nil
	case string:
		return NewStringField(x), nil
	case []byte:
		return NewBytesField(x), nil
	default:
		return nil, dberr.Newf(dberr.KindTypeError,
			"cannot coerce host value of type %T into the value domain", v)
	}
}

func coerceUint(x uint64) (Field, error) {
	if x > math.MaxInt64 {
		return nil, dberr.Newf(dberr.KindTypeError,
			"unsigned value %d overflows the integer domain", x)
	}
	return NewIntField(int64(x)), nil
}
