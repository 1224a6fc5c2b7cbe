package schema

import (
	"relstore/pkg/dberr"
	"relstore/pkg/types"
)

// ColumnMetadata represents the metadata for a single column in a table schema.
type ColumnMetadata struct {
	Name      string     // Column name
	FieldType types.Type // Column data type
	Position  int        // Column position (0-indexed)
}

// NewColumnMetadata creates a new ColumnMetadata instance.
func NewColumnMetadata(name string, fieldType types.Type, position int) (*ColumnMetadata, error) {
	if name == "" {
		return nil, dberr.New(dberr.KindInvalidArgument, "column name cannot be empty")
	}

	if !fieldType.Declarable() {
		return nil, dberr.Newf(dberr.KindInvalidArgument,
			"type %s cannot be declared for column %q", fieldType, name)
	}

	if position < 0 {
		return nil, dberr.Newf(dberr.KindInvalidArgument,
			"column position must be non-negative, got %d for column %q", position, name)
	}

	return &ColumnMetadata{
		Name:      name,
		FieldType: fieldType,
		Position:  position,
	}, nil
}
