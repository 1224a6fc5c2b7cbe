package types

import (
	"bytes"
	"cmp"
)

// Order is the total order over the value domain used for sorting:
// NULL sorts before any non-null value, identically-tagged values compare by
// their scalar, and false sorts before true. Differently-tagged non-null
// values fall back to tag rank; a well-typed column never contains them, but
// the fallback keeps the order total.
func Order(a, b Field) int {
	aNull := a.Type() == NullType
	bNull := b.Type() == NullType

	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return -1
	case bNull:
		return 1
	}

	if a.Type() != b.Type() {
		return cmp.Compare(a.Type(), b.Type())
	}

	switch av := a.(type) {
	case *IntField:
		return cmp.Compare(av.Value, b.(*IntField).Value)
	case *FloatField:
		return cmp.Compare(av.Value, b.(*FloatField).Value)
	case *StringField:
		return cmp.Compare(av.Value, b.(*StringField).Value)
	case *BoolField:
		return cmp.Compare(boolRank(av.Value), boolRank(b.(*BoolField).Value))
	case *BytesField:
		return bytes.Compare(av.Value, b.(*BytesField).Value)
	default:
		return 0
	}
}

// Less reports whether a sorts before b in ascending order.
func Less(a, b Field) bool {
	return Order(a, b) < 0
}
