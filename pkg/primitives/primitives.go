package primitives

// RowID uniquely identifies a row within a table.
//
// Row ids are dense and monotonically increasing: the first row inserted into
// a table receives id 1, and ids are never reused, even after the row has
// been deleted. A RowID therefore doubles as the row's storage slot: column
// slot = RowID - 1.
type RowID uint64

// HashCode represents a hash value computed for a field value.
// It is used for fast lookups and as the feed for index bloom filters.
type HashCode uint64

// InvalidRowID represents an unset row id. Valid row ids start at 1.
const InvalidRowID RowID = 0
