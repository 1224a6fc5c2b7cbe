package table

import (
	"relstore/pkg/dberr"
	"relstore/pkg/query"
)

// Delete tombstones every live row matching the query and returns the count.
// Each deleted row is first removed from every index bucket derived from its
// current column values, so indexes never reference tombstoned rows. Column
// slots are retained; row ids are never reused. A nil or clause-free query
// deletes all live rows.
func (t *Table) Delete(q *query.Query) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	matched, err := t.resolve(q)
	if err != nil {
		return 0, dberr.Wrap(err, "Delete", "table")
	}

	for _, rid := range matched {
		for _, col := range t.schema.Columns {
			if idx, ok := t.indexes[col.Name]; ok {
				idx.Remove(t.fieldAt(col.Position, rid), rid)
			}
		}
		t.tombstones[rid] = struct{}{}
	}

	return len(matched), nil
}
