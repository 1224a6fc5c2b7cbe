package table

import (
	"relstore/pkg/dberr"
	"relstore/pkg/types"
)

// coerceRow converts a host row into schema-ordered fields. Every declared
// column gets a value: the coerced input if present, NULL otherwise. A key
// outside the schema, or a non-null value whose tag conflicts with the
// declared column type, fails the whole row before any state changes.
func (t *Table) coerceRow(row map[string]any) ([]types.Field, error) {
	for name := range row {
		if !t.schema.HasColumn(name) {
			return nil, dberr.Newf(dberr.KindSchemaMismatch,
				"column %q is not in the schema of table %q", name, t.name)
		}
	}

	values := make([]types.Field, t.schema.NumFields())
	for _, col := range t.schema.Columns {
		raw, present := row[col.Name]
		if !present {
			values[col.Position] = types.Null
			continue
		}

		field, err := types.Coerce(raw)
		if err != nil {
			return nil, dberr.Wrap(err, "Insert", "table")
		}

		if field.Type() != types.NullType && field.Type() != col.FieldType {
			return nil, dberr.Newf(dberr.KindSchemaMismatch,
				"column %q of table %q holds %s, got %s",
				col.Name, t.name, col.FieldType, field.Type())
		}

		values[col.Position] = field
	}

	return values, nil
}

// columnUpdate is one validated assignment of an update operation.
type columnUpdate struct {
	name  string
	pos   int
	value types.Field
}

// coerceUpdates validates an update's assignments. Names outside the schema
// are silently ignored; a type-conflicting value fails the whole operation
// before any state changes. The result is ordered by column position so
// repeated runs touch columns deterministically.
func (t *Table) coerceUpdates(updates map[string]any) ([]columnUpdate, error) {
	out := make([]columnUpdate, 0, len(updates))

	for _, col := range t.schema.Columns {
		raw, present := updates[col.Name]
		if !present {
			continue
		}

		field, err := types.Coerce(raw)
		if err != nil {
			return nil, dberr.Wrap(err, "Update", "table")
		}

		if field.Type() != types.NullType && field.Type() != col.FieldType {
			return nil, dberr.Newf(dberr.KindSchemaMismatch,
				"column %q of table %q holds %s, got %s",
				col.Name, t.name, col.FieldType, field.Type())
		}

		out = append(out, columnUpdate{name: col.Name, pos: col.Position, value: field})
	}

	return out, nil
}
