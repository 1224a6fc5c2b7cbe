package table

import (
	"relstore/pkg/dberr"
	"relstore/pkg/index"
	"relstore/pkg/logging"
)

// CreateIndex builds an index of the given kind over an existing column,
// populated from every live row inside a single critical section. Creating
// an index on an already-indexed column fails with AlreadyExists; a column
// outside the schema fails with NotFound.
func (t *Table) CreateIndex(column string, kind index.Kind) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	pos := t.schema.FieldIndex(column)
	if pos < 0 {
		return dberr.Newf(dberr.KindNotFound,
			"column %q does not exist in table %q", column, t.name)
	}

	if _, exists := t.indexes[column]; exists {
		return dberr.Newf(dberr.KindAlreadyExists,
			"index on column %q of table %q already exists", column, t.name)
	}

	idx := index.New(kind)
	for _, rid := range t.liveIDs() {
		idx.Add(t.fieldAt(pos, rid), rid)
	}
	t.indexes[column] = idx

	logging.WithIndex(t.name, column).Debug("index created",
		"kind", kind.String(), "keys", idx.Len())
	return nil
}

// DropIndex destroys the index on a column. Dropping a nonexistent index
// fails with NotFound.
func (t *Table) DropIndex(column string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.indexes[column]; !exists {
		return dberr.Newf(dberr.KindNotFound,
			"no index on column %q of table %q", column, t.name)
	}

	delete(t.indexes, column)

	logging.WithIndex(t.name, column).Debug("index dropped")
	return nil
}
