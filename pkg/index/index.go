package index

import (
	"relstore/pkg/dberr"
	"relstore/pkg/primitives"
	"relstore/pkg/types"
)

// Kind identifies the flavor of an index.
type Kind int

const (
	// KindHash is an equality-only index with no key ordering guarantee.
	KindHash Kind = iota

	// KindBTree is an ordered index whose keys iterate in ascending value
	// order.
	KindBTree
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindHash:
		return "equality"
	case KindBTree:
		return "ordered"
	default:
		return "unknown"
	}
}

// ParseKind converts a kind name into a Kind. Accepted names are
// "equality"/"hash" and "ordered"/"btree".
func ParseKind(name string) (Kind, error) {
	switch name {
	case "equality", "hash":
		return KindHash, nil
	case "ordered", "btree":
		return KindBTree, nil
	default:
		return 0, dberr.Newf(dberr.KindInvalidArgument, "unknown index kind %q", name)
	}
}

// Index maps a field value to the ordered multiset of live row ids holding
// that value in the indexed column.
//
// Index operations never fail: they are pure data-structure updates invoked
// only by the owning table under its lock. The table is responsible for
// keeping every index synchronized with column data across insert, update
// and delete.
type Index interface {
	// Add appends rid to the bucket for key, creating the bucket if needed.
	Add(key types.Field, rid primitives.RowID)

	// Remove deletes the first occurrence of rid from the bucket for key.
	// A bucket that becomes empty is removed together with its key.
	Remove(key types.Field, rid primitives.RowID)

	// LookupEq returns the row ids holding exactly key, or nil.
	// The returned slice is a copy and safe to retain.
	LookupEq(key types.Field) []primitives.RowID

	// Keys returns every key currently present. KindBTree indexes return
	// keys in ascending value order; KindHash indexes make no ordering
	// guarantee.
	Keys() []types.Field

	// Len returns the number of distinct keys.
	Len() int

	// Kind identifies the index flavor.
	Kind() Kind
}

// New creates an empty index of the given kind.
func New(kind Kind) Index {
	if kind == KindBTree {
		return NewBTreeIndex()
	}
	return NewHashIndex()
}
