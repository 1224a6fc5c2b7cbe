package table

import (
	"relstore/pkg/primitives"
	"relstore/pkg/types"
)

// Insert validates row against the schema and appends it, assigning the next
// row id. Declared columns absent from row are stored as NULL. Every index
// receives an entry for the new row. Returns the assigned row id, which is
// the table's new high-water mark.
func (t *Table) Insert(row map[string]any) (primitives.RowID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	values, err := t.coerceRow(row)
	if err != nil {
		return primitives.InvalidRowID, err
	}

	return t.insertLocked(values), nil
}

// InsertBatch inserts rows under a single lock acquisition. All rows are
// validated before any row is stored, so a bad row leaves the table
// untouched. Returns the assigned row ids in input order.
func (t *Table) InsertBatch(rows []map[string]any) ([]primitives.RowID, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	batch := make([][]types.Field, len(rows))
	for i, row := range rows {
		values, err := t.coerceRow(row)
		if err != nil {
			return nil, err
		}
		batch[i] = values
	}

	for pos := range t.columns {
		t.columns[pos] = growColumn(t.columns[pos], len(batch))
	}

	ids := make([]primitives.RowID, len(batch))
	for i, values := range batch {
		ids[i] = t.insertLocked(values)
	}
	return ids, nil
}

// insertLocked appends one validated row and synchronizes every index.
// Caller holds the lock.
func (t *Table) insertLocked(values []types.Field) primitives.RowID {
	rid := t.highWater + 1

	for pos := range t.columns {
		t.columns[pos] = append(t.columns[pos], values[pos])
	}
	t.highWater = rid

	for _, col := range t.schema.Columns {
		if idx, ok := t.indexes[col.Name]; ok {
			idx.Add(values[col.Position], rid)
		}
	}

	return rid
}

// growColumn pre-sizes a column slice for n additional values.
func growColumn(col []types.Field, n int) []types.Field {
	if cap(col)-len(col) >= n {
		return col
	}
	grown := make([]types.Field, len(col), len(col)+n)
	copy(grown, col)
	return grown
}
