package primitives

import "relstore/pkg/dberr"

// Predicate represents a comparison operation between a column value and a
// constant operand.
type Predicate int

const (
	Equals Predicate = iota
	NotEqual
	LessThan
	LessThanOrEqual
	GreaterThan
	GreaterThanOrEqual
)

// String returns the operator symbol for the predicate.
func (p Predicate) String() string {
	switch p {
	case Equals:
		return "=="
	case NotEqual:
		return "!="
	case LessThan:
		return "<"
	case LessThanOrEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterThanOrEqual:
		return ">="
	default:
		return "UNKNOWN"
	}
}

// ParsePredicate converts an operator symbol into a Predicate.
// The accepted symbols are ==, !=, <, <=, >, >= plus "=" as an alias of "==".
func ParsePredicate(symbol string) (Predicate, error) {
	switch symbol {
	case "==", "=":
		return Equals, nil
	case "!=":
		return NotEqual, nil
	case "<":
		return LessThan, nil
	case "<=":
		return LessThanOrEqual, nil
	case ">":
		return GreaterThan, nil
	case ">=":
		return GreaterThanOrEqual, nil
	default:
		return 0, dberr.Newf(dberr.KindInvalidArgument, "unknown operator %q", symbol)
	}
}
