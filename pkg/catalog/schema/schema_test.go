package schema

import (
	"testing"

	"relstore/pkg/dberr"
	"relstore/pkg/types"
)

func testColumns() []ColumnMetadata {
	return []ColumnMetadata{
		{Name: "id", FieldType: types.IntType, Position: 0},
		{Name: "name", FieldType: types.StringType, Position: 1},
		{Name: "active", FieldType: types.BoolType, Position: 2},
	}
}

func TestNewSchema(t *testing.T) {
	s, err := NewSchema("users", testColumns())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if s.NumFields() != 3 {
		t.Errorf("Expected 3 fields, got %d", s.NumFields())
	}
	if s.FieldIndex("name") != 1 {
		t.Errorf("Expected position 1 for name, got %d", s.FieldIndex("name"))
	}
	if s.FieldIndex("missing") != -1 {
		t.Error("Expected -1 for unknown column")
	}
	if !s.HasColumn("active") {
		t.Error("Expected HasColumn(active) to be true")
	}
}

func TestNewSchema_OrdersByPosition(t *testing.T) {
	cols := []ColumnMetadata{
		{Name: "b", FieldType: types.IntType, Position: 1},
		{Name: "a", FieldType: types.IntType, Position: 0},
	}

	s, err := NewSchema("t", cols)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	names := s.FieldNames()
	if names[0] != "a" || names[1] != "b" {
		t.Errorf("Expected position order [a b], got %v", names)
	}
}

func TestNewSchema_Empty(t *testing.T) {
	_, err := NewSchema("t", nil)
	if !dberr.IsInvalidArgument(err) {
		t.Errorf("Expected InvalidArgument for empty schema, got %v", err)
	}
}

func TestNewSchema_DuplicateColumn(t *testing.T) {
	cols := []ColumnMetadata{
		{Name: "id", FieldType: types.IntType, Position: 0},
		{Name: "id", FieldType: types.StringType, Position: 1},
	}

	_, err := NewSchema("t", cols)
	if !dberr.IsInvalidArgument(err) {
		t.Errorf("Expected InvalidArgument for duplicate column, got %v", err)
	}
}

func TestNewSchema_NullNotDeclarable(t *testing.T) {
	cols := []ColumnMetadata{
		{Name: "x", FieldType: types.NullType, Position: 0},
	}

	_, err := NewSchema("t", cols)
	if !dberr.IsInvalidArgument(err) {
		t.Errorf("Expected InvalidArgument for NULL column type, got %v", err)
	}
}

func TestColumnType(t *testing.T) {
	s, err := NewSchema("users", testColumns())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	ct, ok := s.ColumnType("active")
	if !ok || ct != types.BoolType {
		t.Errorf("ColumnType(active) = %v, %v", ct, ok)
	}
	if _, ok := s.ColumnType("missing"); ok {
		t.Error("ColumnType should report missing columns")
	}
}

func TestNewColumnMetadata_Validation(t *testing.T) {
	if _, err := NewColumnMetadata("", types.IntType, 0); !dberr.IsInvalidArgument(err) {
		t.Errorf("Expected InvalidArgument for empty name, got %v", err)
	}
	if _, err := NewColumnMetadata("x", types.NullType, 0); !dberr.IsInvalidArgument(err) {
		t.Errorf("Expected InvalidArgument for NULL type, got %v", err)
	}
	if _, err := NewColumnMetadata("x", types.IntType, -1); !dberr.IsInvalidArgument(err) {
		t.Errorf("Expected InvalidArgument for negative position, got %v", err)
	}
}
