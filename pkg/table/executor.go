package table

import (
	"sort"

	"relstore/pkg/dberr"
	"relstore/pkg/primitives"
	"relstore/pkg/query"
	"relstore/pkg/types"
)

// Select evaluates a query against the table and returns the matching rows.
//
// The pipeline runs entirely under the table lock and in a fixed order
// regardless of how the query's clauses were assembled:
//
//  1. seed with every live row id, ascending
//  2. intersect with each where clause in arrival order, using an index
//     bucket for == on an indexed column and a linear scan otherwise
//  3. stable-sort by the order-by column, if any
//  4. truncate to the limit, if any
//  5. project the requested columns
//
// A nil query selects every live row with all columns.
func (t *Table) Select(q *query.Query) (Rows, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	matched, err := t.resolve(q)
	if err != nil {
		return nil, dberr.Wrap(err, "Select", "executor")
	}

	if ob, ok := q.Ordering(); ok {
		t.sortByColumn(matched, ob)
	}

	if n, ok := q.LimitN(); ok {
		if n < 0 {
			return nil, dberr.Newf(dberr.KindInvalidArgument, "negative limit %d", n).
				WithDetail("table %q", t.name)
		}
		if n < len(matched) {
			matched = matched[:n]
		}
	}

	return t.project(matched, q), nil
}

// resolve returns the live row ids matching the query's where clauses, in
// ascending order. Caller holds the lock. Both mutation paths and Select go
// through resolve, so predicate semantics cannot drift between them.
func (t *Table) resolve(q *query.Query) ([]primitives.RowID, error) {
	candidates := t.liveIDs()

	for _, w := range q.Wheres() {
		op, err := primitives.ParsePredicate(w.Op)
		if err != nil {
			return nil, err
		}

		operand, err := types.Coerce(w.Value)
		if err != nil {
			return nil, err
		}

		pos := t.schema.FieldIndex(w.Column)
		if pos < 0 {
			// Unknown predicate column: nothing can match, but later
			// clauses are still validated.
			candidates = candidates[:0]
			continue
		}

		// Reject tag conflicts up front so the indexed and scanned paths
		// fail identically. Stored values are declared-type or NULL, and
		// NULL operands follow the null comparison rules instead.
		if operand.Type() != types.NullType {
			if declared := t.schema.Columns[pos].FieldType; operand.Type() != declared {
				return nil, dberr.Newf(dberr.KindTypeError,
					"cannot compare column %q (%s) with %s operand",
					w.Column, declared, operand.Type())
			}
		}

		if len(candidates) == 0 {
			continue
		}

		if idx, ok := t.indexes[w.Column]; ok && op == primitives.Equals {
			candidates = intersect(candidates, idx.LookupEq(operand))
			continue
		}

		kept := candidates[:0]
		for _, rid := range candidates {
			match, err := types.Compare(t.fieldAt(pos, rid), op, operand)
			if err != nil {
				return nil, err
			}
			if match {
				kept = append(kept, rid)
			}
		}
		candidates = kept
	}

	return candidates, nil
}

// intersect keeps the candidates present in the bucket, preserving the
// candidates' ascending order.
func intersect(candidates, bucket []primitives.RowID) []primitives.RowID {
	members := make(map[primitives.RowID]struct{}, len(bucket))
	for _, rid := range bucket {
		members[rid] = struct{}{}
	}

	kept := candidates[:0]
	for _, rid := range candidates {
		if _, ok := members[rid]; ok {
			kept = append(kept, rid)
		}
	}
	return kept
}

// sortByColumn stable-sorts row ids by a column's values. NULL sorts before
// any non-null value ascending, after it descending. Ordering by a column
// outside the schema leaves the deterministic ascending-row-id order.
// Caller holds the lock.
func (t *Table) sortByColumn(ids []primitives.RowID, ob query.OrderByClause) {
	pos := t.schema.FieldIndex(ob.Column)
	if pos < 0 {
		return
	}

	sort.SliceStable(ids, func(i, j int) bool {
		c := types.Order(t.fieldAt(pos, ids[i]), t.fieldAt(pos, ids[j]))
		if ob.Ascending {
			return c < 0
		}
		return c > 0
	})
}

// project builds the result rows. Requested columns outside the schema are
// silently omitted; absent a Select clause every schema column is emitted.
// Only projected values are copied into the result. Caller holds the lock.
func (t *Table) project(ids []primitives.RowID, q *query.Query) Rows {
	requested, ok := q.Projection()
	if !ok {
		requested = t.schema.FieldNames()
	}

	positions := make([]int, 0, len(requested))
	names := make([]string, 0, len(requested))
	for _, name := range requested {
		if pos := t.schema.FieldIndex(name); pos >= 0 {
			positions = append(positions, pos)
			names = append(names, name)
		}
	}

	rows := make(Rows, 0, len(ids))
	for _, rid := range ids {
		row := make(Row, len(positions))
		for i, pos := range positions {
			row[names[i]] = t.fieldAt(pos, rid)
		}
		rows = append(rows, row)
	}
	return rows
}
