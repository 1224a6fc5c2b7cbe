package schema

import (
	"slices"

	"relstore/pkg/dberr"
	"relstore/pkg/types"
)

// Schema describes a table's columns. It is built once at table creation and
// never mutated afterwards; every accessor is therefore safe without locking.
type Schema struct {
	TableName string
	Columns   []ColumnMetadata

	fieldNameToIndex map[string]int
}

// NewSchema creates a Schema from column metadata. Columns are ordered by
// their Position; names must be unique and types declarable.
func NewSchema(tableName string, columns []ColumnMetadata) (*Schema, error) {
	if len(columns) == 0 {
		return nil, dberr.New(dberr.KindInvalidArgument, "schema must have at least one column")
	}

	sortedCols := slices.Clone(columns)
	slices.SortFunc(sortedCols, func(a, b ColumnMetadata) int {
		return a.Position - b.Position
	})

	fieldNameToIndex := make(map[string]int, len(sortedCols))
	for i := range sortedCols {
		sortedCols[i].Position = i

		col := &sortedCols[i]
		if col.Name == "" {
			return nil, dberr.New(dberr.KindInvalidArgument, "column name cannot be empty")
		}
		if !col.FieldType.Declarable() {
			return nil, dberr.Newf(dberr.KindInvalidArgument,
				"type %s cannot be declared for column %q", col.FieldType, col.Name)
		}
		if _, dup := fieldNameToIndex[col.Name]; dup {
			return nil, dberr.Newf(dberr.KindInvalidArgument,
				"duplicate column %q", col.Name)
		}
		fieldNameToIndex[col.Name] = i
	}

	return &Schema{
		TableName:        tableName,
		Columns:          sortedCols,
		fieldNameToIndex: fieldNameToIndex,
	}, nil
}

// FieldIndex returns the position of a column by name, or -1 if the column
// does not exist.
func (s *Schema) FieldIndex(name string) int {
	if idx, ok := s.fieldNameToIndex[name]; ok {
		return idx
	}
	return -1
}

// HasColumn returns true if the schema contains a column with the given name.
func (s *Schema) HasColumn(name string) bool {
	_, ok := s.fieldNameToIndex[name]
	return ok
}

// ColumnType returns the declared type of a column. The second return is
// false if the column does not exist.
func (s *Schema) ColumnType(name string) (types.Type, bool) {
	idx, ok := s.fieldNameToIndex[name]
	if !ok {
		return 0, false
	}
	return s.Columns[idx].FieldType, true
}

// NumFields returns the number of columns in the schema.
func (s *Schema) NumFields() int {
	return len(s.Columns)
}

// FieldNames returns all column names in position order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}

// FieldTypes returns all column types in position order.
func (s *Schema) FieldTypes() []types.Type {
	fieldTypes := make([]types.Type, len(s.Columns))
	for i, col := range s.Columns {
		fieldTypes[i] = col.FieldType
	}
	return fieldTypes
}
