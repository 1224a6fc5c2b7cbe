// Package table implements the columnar table: typed column storage with
// logical-row-id allocation, tombstone-based deletion, auxiliary indexes and
// the query executor. All public operations serialize on the table's mutex,
// so every operation observes and leaves a consistent snapshot.
package table

import (
	"sort"
	"sync"

	"relstore/pkg/catalog/schema"
	"relstore/pkg/index"
	"relstore/pkg/primitives"
	"relstore/pkg/types"
)

// Table is a named, schema-typed columnar container.
//
// Storage is column-major: columns[pos] holds one value per row ever
// inserted, indexed by row id minus one. Deleted rows stay in column storage
// and are masked by the tombstone set; their slots are never reclaimed.
type Table struct {
	mu sync.Mutex

	name   string
	schema *schema.Schema

	columns    [][]types.Field
	tombstones map[primitives.RowID]struct{}
	highWater  primitives.RowID

	indexes map[string]index.Index // keyed by column name
}

// New creates an empty table with the given schema.
func New(name string, s *schema.Schema) *Table {
	return &Table{
		name:       name,
		schema:     s,
		columns:    make([][]types.Field, s.NumFields()),
		tombstones: make(map[primitives.RowID]struct{}),
		indexes:    make(map[string]index.Index),
	}
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Schema returns the table schema. The schema is immutable.
func (t *Table) Schema() *schema.Schema {
	return t.schema
}

// Count returns the number of live rows.
func (t *Table) Count() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return int(t.highWater) - len(t.tombstones)
}

// HighWater returns the largest row id ever assigned.
func (t *Table) HighWater() primitives.RowID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.highWater
}

// ListIndexes returns the indexed column names in sorted order.
func (t *Table) ListIndexes() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	names := make([]string, 0, len(t.indexes))
	for name := range t.indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// live reports whether rid names a live row. Caller holds the lock.
func (t *Table) live(rid primitives.RowID) bool {
	if rid < 1 || rid > t.highWater {
		return false
	}
	_, dead := t.tombstones[rid]
	return !dead
}

// liveIDs returns all live row ids in ascending order. Caller holds the lock.
func (t *Table) liveIDs() []primitives.RowID {
	ids := make([]primitives.RowID, 0, int(t.highWater)-len(t.tombstones))
	for rid := primitives.RowID(1); rid <= t.highWater; rid++ {
		if _, dead := t.tombstones[rid]; !dead {
			ids = append(ids, rid)
		}
	}
	return ids
}

// fieldAt returns the stored value for a column position and row id.
// Caller holds the lock.
func (t *Table) fieldAt(pos int, rid primitives.RowID) types.Field {
	return t.columns[pos][rid-1]
}
