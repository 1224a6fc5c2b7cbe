package types

// Type identifies the tag of a value in the store's value domain.
type Type int

const (
	IntType Type = iota
	FloatType
	StringType
	BoolType
	BytesType
	NullType
)

// String returns a string representation of the type
func (t Type) String() string {
	switch t {
	case IntType:
		return "INT_TYPE"
	case FloatType:
		return "FLOAT_TYPE"
	case StringType:
		return "STRING_TYPE"
	case BoolType:
		return "BOOL_TYPE"
	case BytesType:
		return "BYTES_TYPE"
	case NullType:
		return "NULL_TYPE"
	default:
		return "UNKNOWN_TYPE"
	}
}

// IsValidType reports whether t is one of the value-domain tags.
func IsValidType(t Type) bool {
	return t >= IntType && t <= NullType
}

// Declarable reports whether t may be declared as a column type.
// NULL is representable as a value in any column but is not a column type.
func (t Type) Declarable() bool {
	return IsValidType(t) && t != NullType
}
