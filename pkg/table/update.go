package table

import (
	"relstore/pkg/dberr"
	"relstore/pkg/query"
)

// Update applies the assignments to every live row matching the query and
// returns the number of rows updated. Only indexes on the assigned columns
// are touched: for each matched row the old entries are removed, the new
// values written, and the new entries added. Assignment names outside the
// schema are silently ignored. A nil or clause-free query targets all live
// rows.
func (t *Table) Update(updates map[string]any, q *query.Query) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	assignments, err := t.coerceUpdates(updates)
	if err != nil {
		return 0, err
	}

	matched, err := t.resolve(q)
	if err != nil {
		return 0, dberr.Wrap(err, "Update", "table")
	}

	if len(assignments) == 0 {
		return len(matched), nil
	}

	for _, rid := range matched {
		for _, a := range assignments {
			idx, indexed := t.indexes[a.name]
			if indexed {
				idx.Remove(t.fieldAt(a.pos, rid), rid)
			}

			t.columns[a.pos][rid-1] = a.value

			if indexed {
				idx.Add(a.value, rid)
			}
		}
	}

	return len(matched), nil
}
